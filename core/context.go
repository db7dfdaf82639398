package core

import "github.com/rushteam/lendkit/pkg/utils"

// MatchContext 承载申请人与请求级信息，贯穿整个 Pipeline 透传。
type MatchContext struct {
	// Applicant 是本次匹配的申请人画像
	Applicant *ApplicantProfile

	// Params 请求级上下文参数，例如特殊资格规则所需的属性
	// （gender、region 等），不属于特征向量。
	Params map[string]any

	// Labels 是请求级标签，可驱动整个 Pipeline 行为
	Labels map[string]utils.Label
}

// PutLabel 写入请求级 Label。
func (mctx *MatchContext) PutLabel(key string, lbl utils.Label) {
	if mctx.Labels == nil {
		mctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := mctx.Labels[key]; ok {
		mctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	mctx.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (mctx *MatchContext) GetLabel(key string) (utils.Label, bool) {
	if mctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := mctx.Labels[key]
	return lbl, ok
}
