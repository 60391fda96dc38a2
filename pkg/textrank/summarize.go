package textrank

import "sort"

// SelectSentences picks the top-k sentences by score and returns them in
// document order, as given by Sentence.Index. Ranking order and presentation
// order are different concerns: importance decides membership, position
// decides sequence. Ties in score go to the sentence earlier in the
// document.
func SelectSentences(sentences []Sentence, scores []float64, k int) []Sentence {
	if k <= 0 || len(sentences) == 0 {
		return nil
	}
	if k > len(sentences) {
		k = len(sentences)
	}

	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return sentences[order[a]].Index < sentences[order[b]].Index
	})

	selected := make([]Sentence, 0, k)
	for _, idx := range order[:k] {
		selected = append(selected, sentences[idx])
	}
	sort.SliceStable(selected, func(a, b int) bool {
		return selected[a].Index < selected[b].Index
	})
	return selected
}
