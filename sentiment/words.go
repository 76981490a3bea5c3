package sentiment

// WeightedWord pairs a keyword with its sentiment weight. The tables are
// ordered slices because scoring and keyword rankings depend on scan order.
type WeightedWord struct {
	Word  string
	Score int
}

var positiveWords = []WeightedWord{
	// 品質・満足
	{"素晴らしい", 3}, {"すばらしい", 3}, {"最高", 3}, {"完璧", 3}, {"優秀", 3},
	{"良い", 2}, {"よい", 2}, {"いい", 2}, {"良かった", 2}, {"よかった", 2},
	{"気に入", 2}, {"満足", 2}, {"大満足", 3}, {"嬉しい", 2}, {"うれしい", 2},
	{"快適", 2}, {"便利", 2}, {"重宝", 2}, {"使いやすい", 2},
	{"美味しい", 2}, {"おいしい", 2}, {"旨い", 2}, {"うまい", 2},
	{"丁寧", 2}, {"綺麗", 2}, {"きれい", 2}, {"キレイ", 2},
	{"お得", 2}, {"コスパ", 1}, {"お値打ち", 2},
	{"迅速", 2}, {"早い", 1}, {"速い", 1}, {"スムーズ", 2},

	// 推薦
	{"おすすめ", 2}, {"オススメ", 2}, {"お勧め", 2}, {"リピート", 2}, {"リピ", 1},
	{"また買", 2}, {"また購入", 2}, {"また利用", 2},

	// 感情
	{"感動", 3}, {"感激", 3}, {"感謝", 2}, {"ありがとう", 1},
	{"楽しい", 2}, {"楽しめ", 2}, {"幸せ", 2}, {"嬉し", 2},
	{"安心", 2}, {"信頼", 2}, {"丈夫", 2}, {"しっかり", 1},

	// デザイン・見た目
	{"おしゃれ", 2}, {"オシャレ", 2}, {"かわいい", 2}, {"カワイイ", 2},
	{"かっこいい", 2}, {"カッコイイ", 2}, {"スタイリッシュ", 2},
	{"高級感", 2}, {"上品", 2}, {"素敵", 2}, {"ステキ", 2},

	// 機能
	{"高性能", 2}, {"多機能", 2}, {"高品質", 2}, {"期待通り", 2},
	{"期待以上", 3}, {"想像以上", 3}, {"思った以上", 2},
}

var negativeWords = []WeightedWord{
	// 品質・不満
	{"最悪", -3}, {"ひどい", -3}, {"酷い", -3}, {"悪い", -2}, {"ダメ", -2},
	{"不良", -2}, {"不良品", -3}, {"壊れ", -2}, {"故障", -2}, {"破損", -2},
	{"残念", -2}, {"がっかり", -2}, {"ガッカリ", -2}, {"期待外れ", -3},
	{"不満", -2}, {"不便", -2}, {"使いづらい", -2}, {"使いにくい", -2},
	{"微妙", -1}, {"いまいち", -2}, {"イマイチ", -2},
	{"まずい", -2}, {"不味い", -2},

	// コスト
	{"高い", -1}, {"割高", -2}, {"コスパ悪", -2}, {"値段の割", -1},
	{"安っぽい", -2}, {"チープ", -2},

	// 配送・対応
	{"遅い", -1}, {"遅すぎ", -2}, {"届かない", -2}, {"配送遅", -2},
	{"対応が悪", -2}, {"不親切", -2}, {"雑", -1},

	// 品質問題
	{"匂い", -1}, {"臭い", -2}, {"くさい", -2},
	{"汚れ", -1}, {"汚い", -2}, {"シミ", -1}, {"傷", -1},
	{"小さい", -1}, {"大きすぎ", -1}, {"サイズが合", -1},
	{"薄い", -1}, {"ペラペラ", -2}, {"すぐ壊れ", -3},

	// 感情
	{"後悔", -2}, {"失敗", -2}, {"無駄", -2}, {"意味ない", -2}, {"意味がない", -2},
	{"二度と", -3}, {"返品", -2}, {"返金", -2}, {"交換", -1},
}

// 直後の否定語がポジティブ語を反転させる
var negationWords = []string{"ない", "なかった", "ません", "ず", "ぬ", "ん", "ではない", "じゃない", "しない"}
