package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tsinghua-fib-lab/taxregime-sim/utils/config"
)

var (
	// 配置文件路径
	configPath string
	// 配置文件Base64编码后的数据
	configData string
	// 任务名，用于日志与输出
	job string

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel string

	log = logrus.WithField("module", "taxregime")

	// 运行时配置，在PersistentPreRunE中初始化
	runtimeConfig *config.RuntimeConfig
)

var rootCmd = &cobra.Command{
	Use:   "taxregime",
	Short: "Compare income-tax liability under the FY 2025-26 and FY 2024-25 regimes",
	Long: `Computes income tax under the latest (FY 2025-26) and existing (FY 2024-25)
regimes: standard deduction, slab breakdown, surcharge and 4% cess, plus
which regime leaves you with the lower final liability.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file path")
	flags.StringVar(&configData, "config-data", "", "config file base64 encoded data")
	flags.StringVar(&job, "job", "job0", "the name of the task")
	flags.StringVar(&logLevel, "log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	rootCmd.AddCommand(computeCmd, serveCmd, batchCmd, simulateCmd)
}

// setup 初始化日志与配置
func setup(cmd *cobra.Command, args []string) error {
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	logrus.SetOutput(cmd.ErrOrStderr())
	level, ok := logLevels[logLevel]
	if !ok {
		levels := lo.Keys(logLevels)
		slices.Sort(levels)
		return fmt.Errorf("log.level must be one of %v, got %q", levels, logLevel)
	}
	logrus.SetLevel(level)

	c, err := config.Load(configPath, configData)
	if err != nil {
		return err
	}
	runtimeConfig, err = config.NewRuntimeConfig(c)
	if err != nil {
		return err
	}
	log.Debugf("%+v", runtimeConfig.All)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error(err)
		stop()
		os.Exit(1)
	}
}
