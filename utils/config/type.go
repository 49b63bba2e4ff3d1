package config

import "github.com/samber/lo"

// InputPath 指定收入数据来源的配置（文件系统）
// 功能：定义批量收入文件的路径，支持单个文件与文件列表
// 说明：File 与 Files 可以同时设置，按先 File 后 Files 的顺序读取，重复路径只读一次
type InputPath struct {
	File  string   `yaml:"file,omitempty"`  // 文件路径
	Files []string `yaml:"files,omitempty"` // 文件路径列表
}

// Paths 获取去重后的全部文件路径
func (p InputPath) Paths() []string {
	paths := make([]string, 0, len(p.Files)+1)
	if p.File != "" {
		paths = append(paths, p.File)
	}
	paths = append(paths, p.Files...)
	return lo.Uniq(lo.Compact(paths))
}

// Server RPC服务配置
type Server struct {
	Listen         string   `yaml:"listen,omitempty"`          // 监听地址
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"` // CORS允许的来源，为空则允许任意来源
}

// Batch 批量计算任务配置
type Batch struct {
	Input  InputPath `yaml:"input"`            // 输入
	Output string    `yaml:"output,omitempty"` // 输出文件，为空则写到标准输出
	Format string    `yaml:"format,omitempty"` // 输出格式：yaml（默认）或 csv
}

// Simulation 合成人口模拟配置
// 说明：收入服从对数正态分布 median * exp(sigma * N(0,1))
type Simulation struct {
	Seed   uint64  `yaml:"seed,omitempty"`   // 随机数种子
	Count  int     `yaml:"count,omitempty"`  // 人口数量
	Median float64 `yaml:"median,omitempty"` // 收入中位数
	Sigma  float64 `yaml:"sigma,omitempty"`  // 对数收入标准差
}

// Control 计算控制配置
type Control struct {
	Workers int `yaml:"workers,omitempty"` // 并发计算的协程上限
}

// Config YAML配置文件的根结构
// 功能：定义整个系统的配置结构
// 说明：所有配置项均可省略，由NewRuntimeConfig填充默认值
type Config struct {
	Server     Server     `yaml:"server,omitempty"`
	Batch      Batch      `yaml:"batch,omitempty"`
	Simulation Simulation `yaml:"simulation,omitempty"`
	Control    Control    `yaml:"control,omitempty"`
}
