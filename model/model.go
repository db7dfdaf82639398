package model

// Scorer 是打分阶段的最小抽象：输入定长特征向量，输出 [0,1] 匹配概率。
// 具体实现可以是训练好的本地模型（MLP/LR），也可以是测试用的确定性桩。
// 排序引擎对具体实现不感知。
//
// 冻结后的模型对不相交输入可安全并发调用，Predict 不得修改模型状态。
type Scorer interface {
	Name() string
	Predict(vector []float64) (float64, error)
}
