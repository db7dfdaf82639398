// Package builders 注册内置 Node 的配置构建器。
// 入口处 import _ 本包即可通过 YAML/JSON 配置装配完整排序链路。
package builders

import (
	"fmt"

	"github.com/rushteam/lendkit/config"
	"github.com/rushteam/lendkit/eligibility"
	"github.com/rushteam/lendkit/model"
	"github.com/rushteam/lendkit/pipeline"
	"github.com/rushteam/lendkit/pkg/conv"
	"github.com/rushteam/lendkit/rank"
	"github.com/rushteam/lendkit/rerank"
)

func init() {
	config.Register("filter.eligibility", BuildEligibilityNode)
	config.Register("filter.rule", BuildRuleNode)
	config.Register("rank.score", BuildScoreNode)
	config.Register("rerank.topn", BuildTopNNode)
	config.Register("postprocess.explain", BuildExplainNode)
}

func BuildEligibilityNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &eligibility.Node{}, nil
}

// BuildRuleNode 从配置构建特殊资格规则过滤 Node。
// 配置形如：
//
//	rules:
//	  women: 'params.gender == "female"'
func BuildRuleNode(cfg map[string]interface{}) (pipeline.Node, error) {
	rulesMap, ok := cfg["rules"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("rules not found or invalid")
	}
	rules := make(map[string]string, len(rulesMap))
	for tag, v := range rulesMap {
		expr, ok := conv.ToString(v)
		if !ok || expr == "" {
			return nil, fmt.Errorf("rule %q: expression must be a non-empty string", tag)
		}
		rules[tag] = expr
	}
	return &eligibility.RuleNode{Rules: &eligibility.RuleSet{Rules: rules}}, nil
}

// BuildScoreNode 从配置构建打分 Node。
// scorer 取 mlp / lr，artifact 为训练侧导出的 JSON 工件路径。
func BuildScoreNode(cfg map[string]interface{}) (pipeline.Node, error) {
	artifact := conv.ConfigGet(cfg, "artifact", "")
	if artifact == "" {
		return nil, fmt.Errorf("artifact not found")
	}

	var (
		scorer model.Scorer
		err    error
	)
	switch kind := conv.ConfigGet(cfg, "scorer", "mlp"); kind {
	case "mlp":
		scorer, err = model.LoadMLPModel(artifact)
	case "lr":
		scorer, err = model.LoadLRModel(artifact)
	default:
		return nil, fmt.Errorf("unknown scorer type: %s", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("load scorer: %w", err)
	}

	return &rank.ScoreNode{Scorer: scorer}, nil
}

func BuildTopNNode(cfg map[string]interface{}) (pipeline.Node, error) {
	n := conv.ConfigGetInt64(cfg, "n", 0)
	if n <= 0 {
		return nil, fmt.Errorf("n must be positive")
	}
	return &rerank.TopNNode{N: int(n)}, nil
}

func BuildExplainNode(cfg map[string]interface{}) (pipeline.Node, error) {
	return &rerank.ExplainNode{}, nil
}
