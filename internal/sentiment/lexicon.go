package sentiment

// Lexicon tables for the rule layer. Words are matched as substrings,
// patterns in the regexp slices are compiled at init. Japanese entries
// cover the surface variants (kanji, kana, elongated forms) seen in
// comment data.

// positiveWords and negativeWords drive the binary fallback vote used
// when no model backend is available.
var positiveWords = []string{
	// Japanese
	"最高", "素晴らしい", "良い", "いい", "よい", "好き", "大好き",
	"面白い", "おもしろい", "オモシロイ", "楽しい", "たのしい",
	"感動", "感激", "泣いた", "すごい", "凄い", "ありがとう",
	"神", "完璧", "最強", "天才", "センスある",
	"かわいい", "可愛い", "きれい", "綺麗", "かっこいい",
	"上手", "うまい", "笑った", "爆笑", "ウケる", "尊い", "エモい",
	// English
	"good", "great", "nice", "love", "amazing", "awesome", "best",
	"excellent", "perfect", "fantastic", "wonderful", "beautiful",
	"cool", "brilliant", "impressive", "incredible",
	// Emoji
	"👍", "😊", "😄", "❤", "🎉", "👏", "💯", "😍", "🥰",
	"✨", "⭐", "🌟", "🔥", "😎", "🤩", "💕", "💖",
}

var negativeWords = []string{
	// Japanese
	"つまらない", "つまんない", "つまらん", "ひどい", "酷い",
	"悪い", "わるい", "嫌い", "きらい", "最悪", "最低",
	"ダメ", "だめ", "駄目", "残念", "がっかり", "退屈",
	"うざい", "ウザい", "クソ", "くそ", "糞", "ゴミ", "ごみ",
	"キモい", "きもい", "不快", "胸糞", "むかつく", "イライラ",
	"無理", "ありえない", "意味不明", "寒い", "イタい", "オワコン",
	"下手", "ヘタ", "パクリ", "嘘", "やらせ", "ステマ",
	"時間の無駄", "登録解除", "低評価", "詐欺", "炎上",
	// English
	"bad", "worst", "hate", "boring", "terrible", "awful",
	"horrible", "disgusting", "trash", "garbage", "cringe",
	"stupid", "dumb", "sucks", "annoying", "pathetic",
	// Emoji
	"👎", "😢", "😡", "💢", "😤", "🤮", "😒", "💩", "🤬",
	"😠", "😾", "🙄", "😑",
}

// strongNegativePatterns feed the adjustment layer. Distinct pattern
// hits are counted, not occurrences.
var strongNegativePatterns = []string{
	// Core negative expressions
	"つまらない", "つまんない", "つまらん", "マジでつまらん", "マジつまらん",
	"クッソつまらん", "くっそつまらん", "つまんね", "つまんなすぎ",
	"ひどい", "酷い", "ヒドイ", "ひど過ぎ", "酷すぎ",
	"最悪", "サイアク", "最低", "サイテー", "史上最悪", "過去最悪",
	"クソ", "くそ", "糞", "クッソ", "くっそ", "クソすぎ", "クソ過ぎ",
	"ゴミ", "ごみ", "ゴミすぎ", "ゴミ動画", "ゴミ企画", "ゴミ編集",
	"うざい", "ウザい", "うぜえ", "ウゼエ", "ウザすぎ", "うざすぎ", "ウゼー",
	"キモい", "きもい", "キモすぎ", "キショい", "きしょい", "気持ち悪い", "キモ",
	"嫌い", "きらい", "キライ", "大嫌い", "だいきらい", "嫌いすぎ",
	"不快", "不愉快", "胸糞", "胸クソ", "むかつく", "ムカつく", "イライラ",
	// Viewer reactions
	"時間の無駄", "時間返せ", "○分返せ", "時間返して", "人生の無駄",
	"見なきゃよかった", "見るんじゃなかった", "後悔", "見て損した",
	"登録解除", "チャンネル登録解除", "登録解除しました", "アンチ登録",
	"低評価", "低評価押した", "通報", "通報しました", "BAD", "bad押した",
	"がっかり", "ガッカリ", "期待外れ", "期待はずれ", "期待裏切られた",
	"詐欺", "サムネ詐欺", "タイトル詐欺", "釣り", "釣りタイトル", "釣りサムネ",
	"やめて", "やめろ", "やめちまえ", "帰れ", "消えろ", "引退しろ", "辞めろ",
	"炎上", "問題", "炎上案件", "アウト", "やばい", "ヤバい", "ヤバイ", "やばすぎ",
	"オワコン", "オワコン化", "終わった", "終わってる", "劣化", "劣化した",
	// Emotional
	"腹立つ", "イラつく", "ムカつく", "うんざり", "ウンザリ", "しんどい",
	"無理", "ムリ", "ありえない", "あり得ない", "意味不明", "理解不能",
	"寒い", "さむい", "サムい", "痛い", "イタい", "恥ずかしい", "恥ずい",
	"見るに堪えない", "見てられない", "聞いてられない", "耐えられない",
	// Criticism
	"ダメ", "だめ", "駄目", "ダメダメ", "だめだめ", "ダメすぎ",
	"下手", "ヘタ", "へた", "下手くそ", "へたくそ", "下手すぎ",
	"雑", "適当", "テキトー", "いい加減", "ずさん",
	"パクリ", "ぱくり", "パクった", "コピー", "二番煎じ", "劣化コピー",
	"嘘", "うそ", "ウソ", "嘘つき", "デマ", "やらせ", "ヤラセ", "ステマ",
	// Abusive
	"死ね", "くたばれ", "殺す", "殺したい", "〇ね", "しね", "タヒね",
	"アホ", "あほ", "バカ", "ばか", "ガイジ", "カス", "かす", "クズ", "くず",
	"障害", "しょうがい", "ゲェジ", "ゴミクズ",
	// Lukewarm
	"微妙", "びみょう", "ビミョー", "微妙すぎ",
	"なんか違う", "コレジャナイ", "これじゃない",
	// Dismissive
	"草生える", "草も生えない", "草枯れる",
	"は？", "はぁ？", "え？", "えぇ...", "うーん",
	"なにこれ", "何これ", "なんだこれ",
	// Channel criticism
	"見る価値なし", "時間泥棒", "金返せ",
	"案件", "案件臭", "PR臭", "宣伝臭",
	"再生数稼ぎ", "金儲け", "収益化",
	// Fatigue
	"飽きた", "あきた", "飽きてきた",
	"冷めた", "さめた", "冷める",
	"滑ってる", "スベってる", "すべってる", "滑り散らかし",
	"ワンパターン", "マンネリ", "いつもと同じ",
	"手抜き", "手ぬき", "やっつけ",
	"やる気ない", "やる気なさすぎ", "やる気感じない",
	// English
	"bad", "worst", "terrible", "awful", "horrible", "disgusting", "hate",
	"waste of time", "garbage", "trash", "cringe", "cringey", "creepy",
	"boring", "stupid", "dumb", "sucks", "shit", "bullshit",
	"pathetic", "lame", "annoying", "irritating", "disappointing",
	"dislike", "unsubscribed", "clickbait", "fake", "scam",
	"meh", "mediocre", "overrated", "overhyped",
	// Emoji
	"👎", "😡", "💢", "😤", "🤮", "😒", "💩", "🤬", "😠", "😾",
	"🙄", "😑", "😐", "😓", "😰", "😨", "😱", "🤯", "😩", "😫",
}

var strongPositivePatterns = []string{
	// Superlatives
	"最高", "サイコー", "最高すぎ", "最高過ぎ", "史上最高", "過去最高",
	"神", "神回", "神動画", "神編集", "神企画", "神すぎ", "神ってる",
	"完璧", "パーフェクト", "完璧すぎ", "完ぺき",
	"素晴らしい", "すばらしい", "素晴らしすぎ", "素敵", "ステキ", "すてき",
	"最強", "サイキョー", "最強すぎ", "無敵", "ムテキ",
	// Emotional
	"感動", "感動した", "感動的", "泣いた", "泣ける", "涙が出た", "涙出た",
	"感激", "じーん", "ジーン", "グッときた", "ぐっときた",
	"笑った", "爆笑", "ワロタ", "わろた", "ウケる", "うける", "面白すぎ",
	"楽しい", "たのしい", "タノシイ", "楽しすぎ", "楽しかった", "楽しめた",
	"すごい", "凄い", "スゴい", "すごすぎ", "凄すぎ", "スゴすぎ", "やばい",
	// Affection
	"好き", "すき", "スキ", "大好き", "だいすき", "ダイスキ", "好きすぎ",
	"愛してる", "大好物", "推せる", "推せます", "神推し",
	"ありがとう", "ありがとうございます", "サンキュー", "thx", "thanks",
	"尊い", "とうとい", "たまらん", "たまらない", "エモい", "えもい",
	// Quality
	"面白い", "おもしろい", "オモシロイ", "超面白い", "めっちゃ面白い",
	"かわいい", "可愛い", "カワイイ", "可愛すぎ", "かわいすぎ", "かわゆい",
	"きれい", "綺麗", "キレイ", "美しい", "うつくしい", "美人", "可憐",
	"かっこいい", "カッコいい", "イケメン", "かっこよすぎ",
	"いい", "良い", "よい", "いいね", "良いね", "良すぎ", "めっちゃいい",
	"すごくいい", "超いい", "めちゃいい", "めちゃくちゃいい", "メチャいい",
	// Emphasis
	"神コンテンツ", "名作", "傑作", "力作", "秀作", "良作",
	"天才", "天才的", "すばらしすぎる", "やばすぎる",
	"最高峰", "トップレベル", "ハイレベル", "クオリティ高い",
	// Praise
	"上手", "うまい", "ウマい", "上手い", "上手すぎ", "うますぎ",
	"てんさい", "センスある", "センスいい", "センス抜群",
	"プロ", "プロ級", "プロレベル", "プロフェッショナル",
	"職人", "職人技", "匠", "技術がすごい", "技術力高い",
	// Support
	"応援", "応援してる", "頑張れ", "がんばれ", "ファイト", "ガンバ",
	"期待", "期待してる", "楽しみ", "楽しみにしてる", "待ってた", "ずっと待ってた",
	"待ってました", "まってました", "待望",
	"もっと見たい", "また見たい", "リピート", "リピしてる", "何度も見た",
	"毎日見てる", "毎回見てる", "ヘビロテ",
	"登録した", "チャンネル登録した", "高評価", "高評価した", "いいね押した",
	"グッドボタン", "グッド", "GOOD", "good",
	// Agreement
	"共感", "わかる", "わかりみ", "わかりみが深い",
	"それな", "ほんとそれ", "これ", "これな", "まさにこれ",
	"同意", "激しく同意", "禿同",
	// Comfort
	"癒される", "癒し", "癒された", "ほっこり",
	"元気出た", "元気もらった", "元気になった", "励まされた",
	"勇気もらった", "パワーもらった",
	// Learning
	"勉強になる", "参考になる", "ためになる", "助かる", "助かった",
	// Addictive
	"中毒", "中毒性", "中毒になる", "ハマる", "はまる", "ハマった",
	"沼", "沼落ち", "抜け出せない",
	// Exclamation
	"やった", "よし", "いいぞ", "ナイス", "グレート",
	"わーい", "やったー", "よっしゃ", "きたー", "キター", "キタ━",
	// English
	"amazing", "awesome", "excellent", "perfect", "fantastic", "wonderful",
	"great", "nice", "beautiful", "gorgeous", "stunning",
	"love", "loved", "loved it", "brilliant", "magnificent", "outstanding",
	"impressive", "incredible", "unbelievable", "mindblowing", "epic",
	"cool", "dope", "fire", "lit", "best", "masterpiece",
	// Emoji
	"❤", "💕", "💖", "💗", "💓", "💝", "💘", "😍", "🥰", "😊",
	"😄", "😁", "🤣", "😂", "🎉", "🎊", "👏", "👍", "💯", "✨",
	"⭐", "🌟", "💫", "🔥", "😎", "🤩", "😃", "😆", "🙌", "👌",
}

// sarcasmPatterns are matched with regexp search against the original
// text. Deadpan markers like （棒） flip superficially positive comments
// negative.
var sarcasmPatterns = []string{
	// Deadpan markers
	`さすが.*[（(]棒[)）]`, `すごい.*[（(]棒[)）]`, `素晴らしい.*[（(]棒[)）]`,
	`[（(]棒[)）]`, `[（(]棒読み[)）]`, `[（(]白目[)）]`,
	`[（(]失笑[)）]`, `[（(]苦笑[)）]`, `[（(]呆れ[)）]`, `[（(]あきれ[)）]`,
	`[（(]真顔[)）]`, `[（(]遠い目[)）]`, `[（(]目が死んでる[)）]`,
	// Hedged phrasing
	`さすがですね`, `すごいですね`, `いいですね`, `素晴らしいですね`,
	`そうですね`, `そうなんだ`, `へえー`, `ふーん`, `へー`, `ほー`,
	`なるほど`, `なるほどね`, `そっかー`, `そうかー`,
	`分かりました`, `わかりました`, `理解しました`,
	// Overdone praise reads as sarcasm
	`最高ですね[!！]{2,}`, `神[!！]{3,}`, `完璧[!！]{3,}`,
	`さすが[!！]{2,}`, `すばらしい[!！]{3,}`,
	// Explicit sarcasm
	`さすがだわ`, `お見事`, `流石だわ`, `参りました`, `降参`,
	`やりますね`, `やるなあ`, `相変わらず`, `いつも通り`,
	`予想通り`, `想定内`, `期待を裏切らない`,
}

// laughMarkerPatterns count as sarcasm only when the text has no "www"
// after the marker. With "www" the laugh is genuine.
var laughMarkerPatterns = []string{
	`[（(]笑[)）]`, `[（(]爆笑[)）]`,
}

// rhetoricalPatterns catch questions that are really complaints.
var rhetoricalPatterns = []string{
	// これが〜？
	`これが.*[?？]`, `この.*が.*[?？]`, `こんなの.*[?？]`,
	// 何が〜？
	`何が.*[?？]`, `どこが.*[?？]`, `誰が.*[?？]`, `いつ.*[?？]`,
	// どうして〜？
	`どうして.*[?？]`, `なぜ.*[?？]`, `なんで.*[?？]`,
	// Specific phrasings
	`これが面白いの`, `これが面白い？`, `これが面白いの？`, `これ面白い？`,
	`これがいいの`, `これがいいの？`, `これが良いの？`, `これ良い？`,
	`何が良いの`, `何がいいの`, `何が面白いの`, `何がおもしろいの`,
	`どこが面白い`, `どこがいい`, `どこが良い`, `どこがすごい`,
	`どこが神`, `何が神`, `これが神`, `どこが最高`, `何が最高`,
	`どこがかわいい`, `何がかわいい`, `どこがいいの`,
	`誰が見るの`, `誰得`, `需要ある？`, `需要あるの？`,
	`マジで言ってる？`, `まじで言ってる？`, `本気で言ってる？`,
	`正気か？`, `正気？`, `冗談だよね？`, `ネタだよね？`,
	// English
	`really?`, `seriously?`, `are you serious?`, `is this good?`,
	`you serious?`, `for real?`, `are you kidding?`,
	`what is this?`, `what the hell?`, `why?`,
}

// negationCues flip positive matches negative ("面白くない", "not good").
// Matched as substrings of the lowercased text.
var negationCues = []string{
	// Japanese
	"ない", "なかった", "なくて", "ないな", "ないね", "ないわ",
	"ません", "ませんでした", "ぬ", "ん", "ず", "んだ",
	// English
	"not", "no", "never", "nothing", "don't", "doesn't",
	"didn't", "won't", "can't", "couldn't", "shouldn't",
}
