package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/rushteam/lendkit/feature"
)

// Row 是一条训练样本：一个画像与一家放款方的配对。
// 除特征与标签外附带原始画像/放款方字段，方便离线分析与审计。
type Row struct {
	ProfileID  int    `json:"profile_id"`
	LenderID   int    `json:"lender_id"`
	LenderName string `json:"lender_name"`

	IsGoodMatch int     `json:"is_good_match"` // 二分类标签，quality >= 0.6 且合格
	MatchScore  float64 `json:"match_score"`   // 回归目标，0..100

	Features []float64 `json:"features"` // feature.Names 顺序的 10 维向量

	ApplicantLoanAmount  int     `json:"applicant_loan_amount"`
	ApplicantIncome      int     `json:"applicant_income"`
	ApplicantCreditScore int     `json:"applicant_credit_score"`
	ApplicantEmployment  string  `json:"applicant_employment"`
	ApplicantPurpose     string  `json:"applicant_purpose"`
	LenderInterestRate   float64 `json:"lender_interest_rate"`
	LenderPurpose        string  `json:"lender_purpose"`
}

// csvHeader 返回 CSV 列头：标识列、标签列、10 个具名特征列、审计列。
func csvHeader() []string {
	header := []string{"profile_id", "lender_id", "lender_name", "is_good_match", "match_score"}
	header = append(header, feature.Names...)
	return append(header,
		"applicant_loan_amount", "applicant_income", "applicant_credit_score",
		"applicant_employment", "applicant_purpose",
		"lender_interest_rate", "lender_purpose",
	)
}

func (r *Row) csvRecord() []string {
	rec := []string{
		strconv.Itoa(r.ProfileID),
		strconv.Itoa(r.LenderID),
		r.LenderName,
		strconv.Itoa(r.IsGoodMatch),
		strconv.FormatFloat(r.MatchScore, 'f', -1, 64),
	}
	for _, f := range r.Features {
		rec = append(rec, strconv.FormatFloat(f, 'f', -1, 64))
	}
	return append(rec,
		strconv.Itoa(r.ApplicantLoanAmount),
		strconv.Itoa(r.ApplicantIncome),
		strconv.Itoa(r.ApplicantCreditScore),
		r.ApplicantEmployment,
		r.ApplicantPurpose,
		strconv.FormatFloat(r.LenderInterestRate, 'f', -1, 64),
		r.LenderPurpose,
	)
}

// WriteCSV 将样本集写出为 CSV 文件。
func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader()); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range rows {
		if err := w.Write(rows[i].csvRecord()); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// FeatureStat 是单个特征列的描述统计。
type FeatureStat struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Summary 是样本集的汇总统计，随 CSV 一起落盘供训练侧自检。
type Summary struct {
	TotalRecords    int                    `json:"total_records"`
	PositiveMatches int                    `json:"positive_matches"`
	PositiveRate    float64                `json:"positive_rate"`
	AvgMatchScore   float64                `json:"avg_match_score"`
	FeatureStats    map[string]FeatureStat `json:"feature_stats"`
}

// Summarize 计算样本集汇总。统计前三个归一化特征列
// （loan_amount_norm / annual_income_norm / credit_score_norm）。
func Summarize(rows []Row) Summary {
	s := Summary{
		TotalRecords: len(rows),
		FeatureStats: make(map[string]FeatureStat),
	}
	if len(rows) == 0 {
		return s
	}

	var scoreSum float64
	for i := range rows {
		s.PositiveMatches += rows[i].IsGoodMatch
		scoreSum += rows[i].MatchScore
	}
	s.PositiveRate = float64(s.PositiveMatches) / float64(len(rows))
	s.AvgMatchScore = scoreSum / float64(len(rows))

	for col := 0; col < 3; col++ {
		s.FeatureStats[feature.Names[col]] = columnStat(rows, col)
	}
	return s
}

func columnStat(rows []Row, col int) FeatureStat {
	st := FeatureStat{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for i := range rows {
		v := rows[i].Features[col]
		sum += v
		st.Min = math.Min(st.Min, v)
		st.Max = math.Max(st.Max, v)
	}
	n := float64(len(rows))
	st.Mean = sum / n

	var sq float64
	for i := range rows {
		d := rows[i].Features[col] - st.Mean
		sq += d * d
	}
	if len(rows) > 1 {
		st.Std = math.Sqrt(sq / (n - 1))
	}
	return st
}

// WriteSummary 将汇总统计写出为 JSON 文件。
func WriteSummary(path string, s Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
