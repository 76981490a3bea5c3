package handlers

import "go-reviewlens/types"

// Demo dataset: three wireless earphone products with hand-written reviews.
// Used by the analyze endpoint when no URLs are supplied, so the whole
// pipeline can be exercised without scraping anything.

func demoParsedURLs() []types.ParsedURL {
	return []types.ParsedURL{
		{ShopCode: "demo-audio", ItemID: "earphone-pro", OriginalURL: "https://item.rakuten.co.jp/demo-audio/earphone-pro/"},
		{ShopCode: "demo-audio", ItemID: "earphone-lite", OriginalURL: "https://item.rakuten.co.jp/demo-audio/earphone-lite/"},
		{ShopCode: "demo-sound", ItemID: "wireless-buds", OriginalURL: "https://item.rakuten.co.jp/demo-sound/wireless-buds/"},
	}
}

func demoProducts() []types.ProductInfo {
	return []types.ProductInfo{
		{Name: "高品質ワイヤレスイヤホン Bluetooth 5.3 ノイズキャンセリング", Price: 4980, ShopCode: "demo-audio", ItemID: "earphone-pro", URL: "#"},
		{Name: "コンパクト完全ワイヤレスイヤホン 超軽量 防水IPX5", Price: 3280, ShopCode: "demo-audio", ItemID: "earphone-lite", URL: "#"},
		{Name: "スポーツ向けワイヤレスイヤホン 耳掛け式 Bluetooth5.2", Price: 5500, ShopCode: "demo-sound", ItemID: "wireless-buds", URL: "#"},
	}
}

func demoReviewsForProduct(index int) []types.Review {
	reviewSets := [][]types.Review{
		// 商品A: 高品質ワイヤレスイヤホン
		{
			{Text: "音質はとても良いです。低音がしっかり出ていてクリアなサウンドです。ノイズキャンセリングも電車内で効果を実感できました。ただ、バッテリーが2週間で持たなくなってきたのが残念です。", Rating: 4, Title: "音質は最高"},
			{Text: "この価格帯では考えられないほど音質が良いです。通話品質も問題なく、テレワークでも使えます。", Rating: 5, Title: "コスパ最高"},
			{Text: "ノイズキャンセリングの効果が素晴らしい。電車の中でも集中できます。装着感も軽くて長時間つけても疲れません。", Rating: 5, Title: "通勤のお供に"},
			{Text: "タッチ操作の誤反応が多すぎます。音量を変えようとして曲が止まることがしょっちゅうあります。物理ボタンにしてほしいです。", Rating: 2, Title: "操作性が..."},
			{Text: "左耳だけ接続が切れる現象が頻繁に発生します。音質は良いだけに残念。返品も検討しています。", Rating: 1, Title: "接続不安定"},
			{Text: "充電ケースの蓋がすぐ壊れました。1ヶ月で留め具が緩くなって勝手に開きます。充電ケースの作りをもう少ししっかりしてほしい。", Rating: 2, Title: "ケースが弱い"},
			{Text: "デザインがスタイリッシュで気に入っています。ケースもコンパクトで持ち運びしやすいです。", Rating: 4, Title: "デザイン◎"},
			{Text: "音質もデザインも満足していますが、バッテリーの持ちが悪すぎます。3時間くらいで切れるのは短すぎます。もう少しバッテリー持ちを改善してほしいです。", Rating: 3, Title: "バッテリーが..."},
			{Text: "耳が痛くなって30分以上つけられません。イヤーピースのサイズが自分には合わないようです。サイズ展開をもっと増やしてほしい。", Rating: 2, Title: "フィット感"},
			{Text: "防水機能がないので雨の日に使えません。防水機能があれば完璧なのに。", Rating: 3, Title: "防水がほしい"},
		},
		// 商品B: コンパクト完全ワイヤレスイヤホン
		{
			{Text: "軽くて長時間つけても疲れないのが最大のメリットです。通勤で毎日使っていますが快適です。", Rating: 5, Title: "軽くて快適"},
			{Text: "音質はこの価格帯では十分良いレベルです。低音は控えめですが、クリアな中高音が気持ちいいです。", Rating: 4, Title: "音質OK"},
			{Text: "バッテリーが1ヶ月で劣化して、満充電でも2時間しか持たなくなりました。最初は5時間持ったのに。", Rating: 1, Title: "バッテリー劣化"},
			{Text: "ペアリングが頻繁に切れるのがストレスです。スマホとの接続が毎朝やり直しになります。", Rating: 2, Title: "接続切れ"},
			{Text: "価格が安いのにこの品質は素晴らしい。コスパ最高のイヤホンだと思います。", Rating: 5, Title: "コスパ良し"},
			{Text: "防水IPX5なので汗をかいても安心して使えます。ジムでのトレーニング中も問題ありません。", Rating: 5, Title: "防水最高"},
			{Text: "タッチ操作の反応が遅くて、何度もタップしないと反応しないことがあります。もう少しタッチの感度を上げてほしい。", Rating: 3, Title: "タッチ反応"},
			{Text: "充電ケースが安っぽい。プラスチックの質感が明らかにチープです。ケースのデザインをもう少し高級感のあるものにしてほしい。", Rating: 3, Title: "ケースの質"},
		},
		// 商品C: スポーツ向けワイヤレスイヤホン
		{
			{Text: "耳掛け式なのでランニング中も絶対に外れません。フィット感が抜群で激しい運動でも安定しています。", Rating: 5, Title: "スポーツに最適"},
			{Text: "音質は普通レベルです。特に感動はないですが、スポーツ用としては十分です。", Rating: 3, Title: "音質は普通"},
			{Text: "バッテリーの持ちが悪い。カタログでは6時間と書いてあるのに、実際は3時間くらいで切れます。バッテリー表記を正確にしてほしい。", Rating: 2, Title: "バッテリー表記"},
			{Text: "ノイズキャンセリングが弱くてほとんど効果がありません。外の音がスカスカ聞こえてきます。", Rating: 2, Title: "NC弱い"},
			{Text: "説明書が英語だけで日本語がありません。設定方法がわからず困りました。日本語の説明書を同梱してほしい。", Rating: 2, Title: "日本語説明書なし"},
			{Text: "マイクの音質が良くて、通話相手にクリアに聞こえると言われました。テレワークにも使えます。", Rating: 4, Title: "通話品質◎"},
			{Text: "耳掛け部分が硬くて長時間つけていると耳の上が痛くなります。もう少し柔らかい素材にしてほしい。", Rating: 3, Title: "長時間は辛い"},
			{Text: "値段の割に機能が少ない。この価格なら他にもっと良い選択肢があると思います。コスパは悪いです。", Rating: 2, Title: "コスパ悪い"},
			{Text: "Bluetooth接続は安定していて途切れることはほとんどありません。接続の安定性は評価できます。", Rating: 4, Title: "接続安定"},
		},
	}

	if index < 0 || index >= len(reviewSets) {
		return reviewSets[0]
	}
	return reviewSets[index]
}
