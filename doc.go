// Package lendkit 是一个贷款匹配与排序工具包（Lending Kit）。
//
// 设计要点：
// - Pipeline-first: 匹配逻辑通过 Node 串联（Filter → Rank → ReRank → PostProcess）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
// - 单一实现: 资格判定与特征抽取只有一份代码，训练与在线共用，杜绝训练/服务偏斜
package lendkit

import "github.com/rushteam/lendkit/pipeline"

// 轻量 facade：便于用户直接 import "lendkit" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindFilter      = pipeline.KindFilter
	KindRank        = pipeline.KindRank
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
