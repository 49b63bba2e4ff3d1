// 随机数引擎，包装了golang.org/x/exp/rand，提供合成收入抽样
package randengine

import (
	"math"
	"sync"

	"golang.org/x/exp/rand"
)

// Engine 随机数引擎
// 功能：提供可复现的随机数生成功能，支持线程安全操作
// 说明：基于golang.org/x/exp/rand库，同一种子得到同一序列
type Engine struct {
	*rand.Rand            // 底层随机数生成器
	mtx        sync.Mutex // 互斥锁，用于线程安全操作
}

// New 创建随机数引擎
// 功能：初始化一个新的随机数引擎实例
// 参数：seed-随机数种子
// 返回：随机数引擎指针
func New(seed uint64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed))}
}

// LogNormal 按对数正态分布抽样（非线程安全）
// 功能：生成 median * exp(sigma * N(0,1)) 形式的随机数
// 参数：median-分布中位数，sigma-对数标准差
// 返回：非负随机数，sigma为0时恒等于median
// 说明：收入分布右偏，对数正态是常用的近似
func (e *Engine) LogNormal(median, sigma float64) float64 {
	return median * math.Exp(sigma*e.NormFloat64())
}

// LogNormalSafe 按对数正态分布抽样（线程安全）
func (e *Engine) LogNormalSafe(median, sigma float64) float64 {
	e.mtx.Lock()
	defer e.mtx.Unlock()
	return e.LogNormal(median, sigma)
}

// Sample 连续抽取n个对数正态样本（线程安全），同一种子下结果可复现
func (e *Engine) Sample(n int, median, sigma float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = e.LogNormalSafe(median, sigma)
	}
	return out
}
