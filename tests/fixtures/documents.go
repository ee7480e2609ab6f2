// Package fixtures generates multi-sentence documents for summarizer tests.
package fixtures

import "strings"

// Language selects the sentence pool a document is built from.
type Language string

const (
	English  Language = "english"
	Japanese Language = "japanese"
	Korean   Language = "korean"
)

// DocumentOptions configures GenerateDocument.
type DocumentOptions struct {
	// Sentences is the number of sentences to emit. Sentences beyond the
	// pool size repeat it from the start.
	Sentences int

	Language Language

	// Offtopic appends one sentence unrelated to the rest of the pool.
	Offtopic bool
}

var pools = map[Language][]string{
	English: {
		"Machine learning models learn patterns from large datasets.",
		"Deep learning models power image recognition and language processing.",
		"Neural networks are models inspired by the structure of the brain.",
		"Training data quality decides how well learning models generalize.",
		"Cloud platforms make large training datasets easy to store.",
		"Language processing models classify text and translate documents.",
		"Image recognition models detect objects in photos and videos.",
		"Edge devices run small learning models close to the data.",
		"Researchers evaluate models on held out datasets.",
		"Model compression lets neural networks run on phones.",
	},
	Japanese: {
		"人工知能技術の発展により、私たちの生活は大きく変化しています。",
		"機械学習アルゴリズムは、大量のデータから複雑なパターンを学習することができます。",
		"深層学習モデルは、画像認識や自然言語処理などの分野で優れた性能を発揮しています。",
		"ニューラルネットワークは、人間の脳の構造にヒントを得た計算モデルです。",
		"クラウドコンピューティングの普及により、大規模な計算資源を容易に利用できるようになりました。",
		"自然言語処理技術は、テキストの分類や機械翻訳などに応用されています。",
		"エッジコンピューティングは、データ処理をデバイスの近くで行うことで遅延を削減します。",
		"サイバーセキュリティは、デジタル社会において極めて重要な課題です。",
	},
	Korean: {
		"인공지능 기술은 우리의 생활을 크게 바꾸고 있습니다.",
		"기계 학습 모델은 대량의 데이터에서 패턴을 학습합니다.",
		"심층 학습 모델은 이미지 인식 분야에서 뛰어난 성능을 보입니다.",
		"클라우드 컴퓨팅 덕분에 대규모 계산 자원을 쉽게 사용할 수 있습니다.",
		"자연어 처리 기술은 기계 번역에 활용됩니다.",
	},
}

var offtopic = map[Language]string{
	English:  "The bakery on the corner sells fresh bread every morning.",
	Japanese: "駅前のパン屋は毎朝焼きたてのパンを売っています。",
	Korean:   "길 모퉁이의 빵집은 매일 아침 빵을 팝니다.",
}

// GenerateDocument builds a document from the pool for opts.Language,
// defaulting to English. Sentences are separated by a single space.
func GenerateDocument(opts DocumentOptions) string {
	pool, ok := pools[opts.Language]
	if !ok {
		opts.Language = English
		pool = pools[English]
	}

	parts := make([]string, 0, opts.Sentences+1)
	for i := 0; i < opts.Sentences; i++ {
		parts = append(parts, pool[i%len(pool)])
	}
	if opts.Offtopic {
		parts = append(parts, offtopic[opts.Language])
	}
	return strings.Join(parts, " ")
}

// PoolSize returns how many distinct sentences lang can produce.
func PoolSize(lang Language) int {
	return len(pools[lang])
}

// OfftopicSentence returns the unrelated sentence appended by Offtopic.
func OfftopicSentence(lang Language) string {
	return offtopic[lang]
}
