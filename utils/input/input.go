package input

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/taxregime-sim/utils/config"
	"gopkg.in/yaml.v2"
)

var log = logrus.WithField("module", "input")

// Input 输入数据
// 功能：存储批量计算所需的收入文本
// 说明：收入保持原始文本，由计算引擎统一解析与校验
type Input struct {
	Incomes []string // 按读取顺序排列的收入
	Sources []string // 每条收入对应的来源文件
}

// incomesFile YAML收入文件格式
type incomesFile struct {
	Incomes []string `yaml:"incomes"`
}

// Init 读取数据
// 功能：根据配置读取全部收入文件
// 参数：path-输入路径配置
// 返回：读取完成的输入数据；没有任何文件或读取失败时返回错误
// 算法说明：
// 1. 按 File、Files 的顺序依次读取
// 2. .yaml/.yml 文件按 incomes 列表解析
// 3. 其他文件按行解析，跳过空行与 # 注释
func Init(path config.InputPath) (*Input, error) {
	paths := path.Paths()
	if len(paths) == 0 {
		return nil, errors.New("no input file specified")
	}
	res := &Input{}
	for _, p := range paths {
		incomes, err := loadFile(p)
		if err != nil {
			return nil, err
		}
		log.Infof("loaded %d incomes from %s", len(incomes), p)
		res.Incomes = append(res.Incomes, incomes...)
		for range incomes {
			res.Sources = append(res.Sources, p)
		}
	}
	return res, nil
}

func loadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read input %s", path)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var f incomesFile
		if err := yaml.UnmarshalStrict(data, &f); err != nil {
			return nil, errors.Wrapf(err, "parse input %s", path)
		}
		return f.Incomes, nil
	default:
		return parseLines(data)
	}
}

// parseLines 每行一条收入
func parseLines(data []byte) ([]string, error) {
	var incomes []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		incomes = append(incomes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan input")
	}
	return incomes, nil
}
