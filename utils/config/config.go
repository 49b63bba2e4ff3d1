package config

import (
	"encoding/base64"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	DefaultListen           = ":51105"
	FormatYAML              = "yaml"
	FormatCSV               = "csv"
	defaultSimulationCount  = 1000
	defaultSimulationMedian = 900000
	defaultSimulationSigma  = 0.8
)

// RuntimeConfig 运行时配置
// 功能：存储填充默认值并校验后的配置
// 说明：原始配置保留在All中，C为常用的计算控制配置
type RuntimeConfig struct {
	All Config  // 全部配置
	C   Control // 计算控制配置
}

// NewRuntimeConfig 根据配置初始化运行时配置
// 功能：填充默认值并校验配置
// 参数：config-原始配置对象
// 返回：运行时配置指针；配置非法时返回错误
// 算法说明：
// 1. 未指定并发数时使用CPU核数
// 2. 未指定监听地址、输出格式、模拟参数时使用默认值
// 3. 校验输出格式与模拟参数范围
func NewRuntimeConfig(config Config) (*RuntimeConfig, error) {
	if config.Control.Workers <= 0 {
		config.Control.Workers = runtime.NumCPU()
	}
	if config.Server.Listen == "" {
		config.Server.Listen = DefaultListen
	}
	if config.Batch.Format == "" {
		config.Batch.Format = FormatYAML
	}
	if config.Simulation.Count == 0 {
		config.Simulation.Count = defaultSimulationCount
	}
	if config.Simulation.Median == 0 {
		config.Simulation.Median = defaultSimulationMedian
	}
	if config.Simulation.Sigma == 0 {
		config.Simulation.Sigma = defaultSimulationSigma
	}

	switch config.Batch.Format {
	case FormatYAML, FormatCSV:
	default:
		return nil, errors.Errorf("batch.format must be %q or %q, got %q", FormatYAML, FormatCSV, config.Batch.Format)
	}
	if config.Simulation.Count < 0 {
		return nil, errors.Errorf("simulation.count must be positive, got %d", config.Simulation.Count)
	}
	if config.Simulation.Median < 0 {
		return nil, errors.Errorf("simulation.median must be positive, got %v", config.Simulation.Median)
	}
	if config.Simulation.Sigma < 0 {
		return nil, errors.Errorf("simulation.sigma must not be negative, got %v", config.Simulation.Sigma)
	}

	return &RuntimeConfig{
		All: config,
		C:   config.Control,
	}, nil
}

// Load 读取配置
// 功能：从文件路径或Base64编码的数据中读取YAML配置
// 参数：path-配置文件路径，data-Base64编码的配置数据（path优先）
// 返回：配置对象；两者都为空时返回空配置
// 说明：使用严格模式解析，未知字段视为错误
func Load(path, data string) (Config, error) {
	var c Config
	var file []byte
	var err error
	switch {
	case path != "":
		file, err = os.ReadFile(path)
		if err != nil {
			return c, errors.Wrap(err, "config file load err")
		}
	case data != "":
		file, err = base64.StdEncoding.DecodeString(data)
		if err != nil {
			return c, errors.Wrap(err, "config data load err")
		}
	default:
		return c, nil
	}
	if err := yaml.UnmarshalStrict(file, &c); err != nil {
		return c, errors.Wrap(err, "config parse err")
	}
	return c, nil
}
