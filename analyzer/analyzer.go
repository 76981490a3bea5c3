package analyzer

import (
	"math"
	"sort"
	"strconv"

	"go-reviewlens/lexicon"
	"go-reviewlens/types"
)

const (
	aspectSentenceCap = 5
	rankingCap        = 10
)

// AnalyzeReviewSentences segments one review into sentences and runs the full
// sentence pipeline on each: aspect classification, subject extraction,
// sentiment judgement and improvement-request detection.
func AnalyzeReviewSentences(review types.Review, reviewIndex int) []types.SentenceRecord {
	sentences := SplitSentences(review.Text)
	records := make([]types.SentenceRecord, 0, len(sentences))

	for _, sentence := range sentences {
		judgement := JudgeSentiment(sentence)
		records = append(records, types.SentenceRecord{
			OriginalSentence: sentence,
			Subject:          ExtractSubject(sentence),
			Aspect:           ClassifyAspect(sentence),
			Sentiment:        judgement.Sentiment,
			PositiveScore:    judgement.PositiveScore,
			NegativeScore:    judgement.NegativeScore,
			MatchedPositive:  judgement.MatchedPositive,
			MatchedNegative:  judgement.MatchedNegative,
			IsRequest:        IsImprovementRequest(sentence),
			SourceReview: types.SourceReview{
				ReviewIndex: reviewIndex,
				Rating:      review.Rating,
				FullText:    review.Text,
				Title:       review.Title,
			},
		})
	}
	return records
}

// AnalyzeReviews runs the sentence pipeline over every review and rolls the
// results up into one product-level analysis.
func AnalyzeReviews(reviews []types.Review) types.ProductAnalysis {
	var allSentences []types.SentenceRecord
	for i, review := range reviews {
		allSentences = append(allSentences, AnalyzeReviewSentences(review, i)...)
	}

	var requests []types.GroupInput
	var breakdown types.SentimentBreakdown
	for _, s := range allSentences {
		switch s.Sentiment {
		case "positive":
			breakdown.Positive++
		case "negative":
			breakdown.Negative++
		default:
			breakdown.Neutral++
		}
		if s.IsRequest {
			requests = append(requests, types.GroupInput{
				Sentence: s.OriginalSentence,
				Aspect:   s.Aspect,
				Subject:  s.Subject,
			})
		}
	}

	ratingDistribution := map[string]int{"5": 0, "4": 0, "3": 0, "2": 0, "1": 0}
	ratingSum := 0.0
	for _, review := range reviews {
		ratingSum += review.Rating
		r := int(math.Round(review.Rating))
		if r >= 1 && r <= 5 {
			ratingDistribution[strconv.Itoa(r)]++
		}
	}
	averageRating := 0.0
	if len(reviews) > 0 {
		averageRating = math.Round(ratingSum/float64(len(reviews))*10) / 10
	}

	return types.ProductAnalysis{
		TotalReviews:         len(reviews),
		TotalSentences:       len(allSentences),
		AverageRating:        averageRating,
		SentimentBreakdown:   breakdown,
		RatingDistribution:   ratingDistribution,
		AspectMatrix:         buildAspectMatrix(allSentences),
		TopNegativeSentences: buildSentenceRanking(allSentences, "negative"),
		TopPositiveSentences: buildSentenceRanking(allSentences, "positive"),
		ImprovementRequests:  GroupSimilarSentences(requests),
		AllAnalyzedSentences: allSentences,
	}
}

type aspectBucket struct {
	aspect   string
	positive []string
	negative []string
	neutral  int
}

// buildAspectMatrix splits sentences per aspect and picks grouped
// representative sentences for each polarity. Buckets keep first-seen aspect
// order so equal-volume aspects rank deterministically.
func buildAspectMatrix(sentences []types.SentenceRecord) []types.AspectMatrixEntry {
	var buckets []*aspectBucket
	index := make(map[string]*aspectBucket)

	for _, s := range sentences {
		if s.Aspect == lexicon.OtherAspect && s.Subject == "" {
			continue
		}
		b, ok := index[s.Aspect]
		if !ok {
			b = &aspectBucket{aspect: s.Aspect}
			index[s.Aspect] = b
			buckets = append(buckets, b)
		}
		switch s.Sentiment {
		case "positive":
			b.positive = append(b.positive, s.OriginalSentence)
		case "negative":
			b.negative = append(b.negative, s.OriginalSentence)
		default:
			b.neutral++
		}
	}

	var matrix []types.AspectMatrixEntry
	for _, b := range buckets {
		if len(b.positive)+len(b.negative) == 0 {
			continue
		}
		matrix = append(matrix, types.AspectMatrixEntry{
			Aspect:            b.aspect,
			PositiveCount:     len(b.positive),
			NegativeCount:     len(b.negative),
			NeutralCount:      b.neutral,
			PositiveSentences: groupBucket(b.positive, b.aspect),
			NegativeSentences: groupBucket(b.negative, b.aspect),
		})
	}
	sort.SliceStable(matrix, func(i, j int) bool {
		return matrix[i].PositiveCount+matrix[i].NegativeCount > matrix[j].PositiveCount+matrix[j].NegativeCount
	})
	return matrix
}

func groupBucket(sentences []string, aspect string) []types.Factor {
	items := make([]types.GroupInput, 0, len(sentences))
	for _, s := range sentences {
		items = append(items, types.GroupInput{Sentence: s, Aspect: aspect})
	}
	factors := GroupSimilarSentences(items)
	if len(factors) > aspectSentenceCap {
		factors = factors[:aspectSentenceCap]
	}
	return factors
}

// buildSentenceRanking groups every sentence of one sentiment into factors and
// keeps the ten largest clusters.
func buildSentenceRanking(sentences []types.SentenceRecord, sentiment string) []types.Factor {
	var items []types.GroupInput
	for _, s := range sentences {
		if s.Sentiment != sentiment {
			continue
		}
		items = append(items, types.GroupInput{
			Sentence: s.OriginalSentence,
			Aspect:   s.Aspect,
			Subject:  s.Subject,
		})
	}
	factors := GroupSimilarSentences(items)
	if len(factors) > rankingCap {
		factors = factors[:rankingCap]
	}
	return factors
}
