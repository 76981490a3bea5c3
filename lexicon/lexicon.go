// Package lexicon holds the dictionaries driving aspect classification,
// sentiment judgement, improvement-request detection and similarity grouping.
// The tables are plain data so they can be swapped or extended without
// touching any scoring algorithm. Table order matters: classification and
// grouping tie-breaks follow it.
package lexicon

import "regexp"

// AspectEntry binds one aspect name to its keyword list.
type AspectEntry struct {
	Name     string
	Keywords []string
}

// OtherAspect is the bucket for sentences no aspect keyword matches.
const OtherAspect = "その他"

// Aspects is the ordered aspect dictionary. Earlier entries win score ties.
var Aspects = []AspectEntry{
	{"品質", []string{"品質", "作り", "仕上げ", "素材", "質感", "縫製", "精度", "質", "出来", "クオリティ", "性能", "機能"}},
	{"耐久性", []string{"バッテリー", "充電", "寿命", "壊れ", "故障", "劣化", "耐久", "持ち", "電池", "断線", "剥がれ", "割れ", "破損", "摩耗"}},
	{"操作性", []string{"ボタン", "操作", "タッチ", "反応", "設定", "接続", "ペアリング", "Bluetooth", "使い方", "スイッチ", "切替", "UI", "アプリ", "リモコン"}},
	{"デザイン", []string{"デザイン", "見た目", "色", "サイズ", "形", "重さ", "大きさ", "小さ", "軽", "重", "コンパクト", "薄", "スタイリッシュ", "おしゃれ", "カラー"}},
	{"価格", []string{"価格", "値段", "コスパ", "コストパフォーマンス", "安い", "高い", "金額", "円", "お買い得", "お値打ち", "割安", "割高"}},
	{"音質", []string{"音質", "音", "サウンド", "低音", "高音", "中音", "ノイズ", "クリア", "雑音", "音漏れ", "ノイキャン", "ノイズキャンセリング", "マイク", "通話"}},
	{"装着感", []string{"フィット", "装着", "着け心地", "履き心地", "肌触り", "つけ心地", "耳", "痛い", "痛く", "フィット感", "着心地", "蒸れ", "締め付け"}},
	{"配送", []string{"配送", "梱包", "届", "発送", "包装", "到着", "遅い", "早い", "速い", "迅速", "丁寧"}},
	{"サポート", []string{"対応", "サポート", "説明書", "カスタマー", "保証", "マニュアル", "サービス", "アフター", "返品", "交換", "問い合わせ"}},
}

// PositiveExpressions are the sentence-level positive evaluation phrases.
var PositiveExpressions = []string{
	"良い", "よい", "いい", "良く", "良かった", "よかった",
	"素晴らしい", "すばらしい", "最高", "完璧", "優秀", "優れ",
	"満足", "気に入", "快適", "便利", "楽",
	"おすすめ", "お勧め", "オススメ",
	"使いやすい", "使い易い", "わかりやすい", "分かりやすい",
	"しっかり", "丈夫", "頑丈", "安心", "安定",
	"コスパ最高", "コスパが良", "コスパ良", "お買い得", "お値打ち",
	"高性能", "多機能", "高品質",
	"期待通り", "期待以上", "想像以上", "思った以上",
	"綺麗", "きれい", "キレイ", "美しい",
	"軽い", "軽く", "コンパクト",
	"クリア", "鮮明", "鮮やか",
	"静か", "静音",
	"フィット", "ぴったり", "ピッタリ",
	"迅速", "丁寧", "親切",
	"感動", "嬉しい", "うれしい",
	"問題ない", "問題なく", "問題なし",
	"十分", "充分",
}

// NegativeExpressions are the sentence-level negative evaluation phrases.
// Unlike positives they are never negation-checked.
var NegativeExpressions = []string{
	"悪い", "ダメ", "だめ", "イマイチ", "いまいち", "微妙",
	"最悪", "ひどい", "酷い",
	"不良", "不良品", "壊れ", "故障", "破損", "割れ",
	"使いにくい", "使い辛い", "使いづらい", "わかりにくい", "分かりにくい",
	"不便", "面倒", "手間",
	"高い", "高すぎ", "割高",
	"安っぽい", "チープ", "ちゃち",
	"残念", "がっかり", "ガッカリ", "期待外れ", "期待はずれ",
	"重い", "重たい", "でかい", "デカい", "大きすぎ",
	"うるさい", "やかましい",
	"痛い", "痛く",
	"不満", "不安",
	"遅い", "遅く", "時間がかかる",
	"切れ", "途切れ", "繋がら", "つながら",
	"持たない", "持たなく", "もたない",
	"合わない", "合わなかった",
	"返品", "返金", "交換",
	"二度と", "後悔",
	"誤反応", "誤作動", "反応しない", "反応が悪",
	"すぐ壊れ", "すぐに壊れ",
	"足りない", "不足",
}

// NegationMarkers flip a positive expression when found right around it.
var NegationMarkers = []string{"ない", "なかった", "ません", "ず", "ぬ", "ではない", "じゃない", "しない", "できない", "なく", "なさ"}

// RequestPatterns match sentences phrased as improvement requests.
var RequestPatterns = []*regexp.Regexp{
	regexp.MustCompile(`してほしい`),
	regexp.MustCompile(`してほしかった`),
	regexp.MustCompile(`してくれたら`),
	regexp.MustCompile(`してくれれば`),
	regexp.MustCompile(`だったらよかった`),
	regexp.MustCompile(`だったら良かった`),
	regexp.MustCompile(`だったら良いのに`),
	regexp.MustCompile(`があれば`),
	regexp.MustCompile(`があったら`),
	regexp.MustCompile(`を改善`),
	regexp.MustCompile(`を改良`),
	regexp.MustCompile(`だと嬉しい`),
	regexp.MustCompile(`だとうれしい`),
	regexp.MustCompile(`だと助かる`),
	regexp.MustCompile(`にしてほしい`),
	regexp.MustCompile(`にしてくれれば`),
	regexp.MustCompile(`もう少し`),
	regexp.MustCompile(`もっと.{1,15}(ば|たら|ほしい|てほしい)`),
	regexp.MustCompile(`が足りない`),
	regexp.MustCompile(`が欲しい`),
	regexp.MustCompile(`がほしい`),
	regexp.MustCompile(`たらいいのに`),
	regexp.MustCompile(`ればいいのに`),
	regexp.MustCompile(`てくれると`),
	regexp.MustCompile(`だといい`),
}
