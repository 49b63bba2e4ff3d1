package task

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/taxregime-sim/utils/config"
)

var log = logrus.WithField("module", "task")

// Context 计算任务上下文
// 功能：包含一次批量计算或人口模拟任务的全部配置与输出目标
// 说明：任务之间不共享状态，每次运行创建一个新的Context
type Context struct {
	// 任务名
	job string
	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig
	// 未配置输出文件时的默认输出
	stdout io.Writer
}

// NewContext 创建新的计算任务上下文
// 参数：
//   - job: 任务名称，写入日志与输出
//   - rc: 运行时配置
//   - stdout: 默认输出
//
// 返回：初始化完成的Context实例
func NewContext(job string, rc *config.RuntimeConfig, stdout io.Writer) *Context {
	return &Context{
		job:           job,
		runtimeConfig: rc,
		stdout:        stdout,
	}
}
