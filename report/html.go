package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"go-reviewlens/store"
	"go-reviewlens/types"
)

var verdictEmoji = map[string]string{
	"positive": "😊",
	"negative": "😠",
	"neutral":  "😐",
}

type htmlReportData struct {
	GeneratedAt string
	Summary     types.CrossSummary
	Analyses    []types.ProductAnalysisEntry
	Aspects     []string
}

var reportFuncs = template.FuncMap{
	"inc":    func(i int) int { return i + 1 },
	"price":  formatPrice,
	"rating": formatRating,
	"take": func(factors []types.Factor, n int) []types.Factor {
		if len(factors) > n {
			return factors[:n]
		}
		return factors
	},
	"head": func(s string, n int) string {
		runes := []rune(s)
		if len(runes) > n {
			return string(runes[:n])
		}
		return s
	},
	"verdict": func(aspects map[string]string, aspect string) string {
		v := aspects[aspect]
		if v == "" {
			v = "neutral"
		}
		return verdictEmoji[v]
	},
	"productName": func(info types.ProductInfo, idx int) string {
		return productLabel(info.Name, idx)
	},
}

var reportTmpl = template.Must(template.New("report").Funcs(reportFuncs).Parse(reportTemplate))

// GeneratePrintableHTML renders the run as a standalone print-ready page.
func GeneratePrintableHTML(run *store.AnalysisRun) (string, error) {
	if run == nil {
		return "<html><body><p>分析データがありません</p></body></html>", nil
	}

	data := htmlReportData{
		GeneratedAt: time.Now().Format("2006/01/02 15:04:05"),
		Summary:     run.Summary,
		Analyses:    run.Analyses,
		Aspects:     aspectOrder(run.Analyses),
	}

	var b strings.Builder
	if err := reportTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func productLabel(name string, idx int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("商品%d", idx+1)
}

const reportTemplate = `<!DOCTYPE html>
<html lang="ja">
<head>
<meta charset="UTF-8">
<title>商品レビュー分析レポート</title>
<style>
    @import url('https://fonts.googleapis.com/css2?family=Noto+Sans+JP:wght@300;400;600;700&display=swap');
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: 'Noto Sans JP', sans-serif; color: #1e293b; padding: 24px; font-size: 11pt; line-height: 1.6; }
    h1 { font-size: 18pt; text-align: center; margin-bottom: 4px; }
    .subtitle { text-align: center; color: #64748b; font-size: 10pt; margin-bottom: 16px; }
    .meta { text-align: center; margin-bottom: 20px; }
    .meta span { display: inline-block; padding: 2px 10px; margin: 2px; font-size: 9pt; border: 1px solid #cbd5e1; border-radius: 12px; }
    h2 { font-size: 13pt; margin: 16px 0 8px; padding-bottom: 4px; border-bottom: 2px solid #6366f1; color: #4338ca; }
    h3 { font-size: 11pt; margin: 12px 0 6px; color: #334155; }
    table { width: 100%; border-collapse: collapse; margin: 8px 0 16px; font-size: 9pt; }
    th { background: #f1f5f9; padding: 6px 8px; text-align: left; border: 1px solid #e2e8f0; font-weight: 600; }
    td { padding: 6px 8px; border: 1px solid #e2e8f0; }
    .factor { padding: 6px 10px; margin: 4px 0; border-left: 3px solid; border-radius: 4px; font-size: 9.5pt; }
    .factor-pos { border-color: #22c55e; background: #f0fdf4; }
    .factor-neg { border-color: #ef4444; background: #fef2f2; }
    .hint { padding: 8px 10px; margin: 4px 0; background: #f5f3ff; border-left: 3px solid #8b5cf6; border-radius: 4px; font-size: 9.5pt; }
    .page-break { page-break-before: always; }
    @media print { body { padding: 0; } }
</style>
</head>
<body>
    <h1>📊 商品レビュー分析レポート</h1>
    <p class="subtitle">生成日時: {{.GeneratedAt}}</p>
    <div class="meta">
        <span>カテゴリ: {{.Summary.Category}}</span>
        <span>価格帯: ¥{{price .Summary.PriceRange.Min}}〜¥{{price .Summary.PriceRange.Max}}</span>
        <span>{{.Summary.ProductCount}}商品 / {{.Summary.TotalReviews}}件</span>
    </div>

    <h2>🟢 評価が上がる要因</h2>
    {{range $i, $f := .Summary.PositiveFactors}}
    <div class="factor factor-pos">
        {{inc $i}}. 「{{$f.Sentence}}」
        <small>[{{$f.Aspect}}] {{$f.TotalCount}}件 / {{len $f.Products}}商品</small>
    </div>
    {{end}}

    <h2>🔴 評価が下がる要因</h2>
    {{range $i, $f := .Summary.NegativeFactors}}
    <div class="factor factor-neg">
        {{inc $i}}. 「{{$f.Sentence}}」
        <small>[{{$f.Aspect}}] {{$f.TotalCount}}件 / {{len $f.Products}}商品</small>
    </div>
    {{end}}

    <h2>💡 差別化のヒント</h2>
    {{range .Summary.DifferentiationHints}}
    <div class="hint">
        <strong>{{.Hint}}</strong><br>
        <small>{{.Reason}}</small>
    </div>
    {{else}}
    <p style="color:#94a3b8;font-size:9pt;">2商品以上で共通する課題がないためヒントを生成できません</p>
    {{end}}

    <h2>📊 商品間比較</h2>
    <table>
        <thead>
            <tr>
                <th></th>
                {{range .Summary.ComparisonTable}}<th>{{head .ProductName 20}}</th>{{end}}
            </tr>
        </thead>
        <tbody>
            <tr><td>価格</td>{{range .Summary.ComparisonTable}}<td>¥{{price .Price}}</td>{{end}}</tr>
            <tr><td>評価</td>{{range .Summary.ComparisonTable}}<td>⭐{{rating .Rating}}</td>{{end}}</tr>
            {{range $aspect := .Aspects}}
            <tr><td>{{$aspect}}</td>{{range $.Summary.ComparisonTable}}<td>{{verdict .Aspects $aspect}}</td>{{end}}</tr>
            {{end}}
        </tbody>
    </table>

    {{range $idx, $pa := .Analyses}}
    <div class="{{if gt $idx 0}}page-break{{end}}">
        <h2>🔍 個別分析: {{productName $pa.ProductInfo $idx}}</h2>
        <p style="font-size:9pt;color:#64748b;">レビュー{{$pa.Analysis.TotalReviews}}件 / 平均⭐{{rating $pa.Analysis.AverageRating}}</p>

        <h3>アスペクト別評価</h3>
        <table>
            <thead><tr><th>アスペクト</th><th>😊</th><th>😠</th></tr></thead>
            <tbody>
                {{range $pa.Analysis.AspectMatrix}}
                <tr><td>{{.Aspect}}</td><td style="color:#16a34a;">{{.PositiveCount}}</td><td style="color:#dc2626;">{{.NegativeCount}}</td></tr>
                {{end}}
            </tbody>
        </table>

        <h3>🔴 ネガティブ TOP5</h3>
        {{range $i, $s := take $pa.Analysis.TopNegativeSentences 5}}
        <div class="factor factor-neg">{{inc $i}}. 「{{$s.Sentence}}」<small>[{{$s.Aspect}}] {{$s.Count}}件</small></div>
        {{end}}

        <h3>🟢 ポジティブ TOP5</h3>
        {{range $i, $s := take $pa.Analysis.TopPositiveSentences 5}}
        <div class="factor factor-pos">{{inc $i}}. 「{{$s.Sentence}}」<small>[{{$s.Aspect}}] {{$s.Count}}件</small></div>
        {{end}}
    </div>
    {{end}}

    <script>window.onload = () => window.print();</script>
</body>
</html>`
