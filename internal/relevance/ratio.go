package relevance

// Ratio computes a length-weighted character-matching similarity in
// [0, 1]: twice the total size of the longest matching blocks divided
// by the combined length of both strings. It measures shared content,
// not edit distance, so near-duplicate titles and paraphrases score
// high even when word order shifts.
//
// Arguments are compared in a canonical order so the ratio is symmetric;
// among equally long matching blocks the earliest one wins.
func Ratio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	x, y := a, b
	if x > y {
		x, y = y, x
	}

	return 2 * float64(totalMatchSize(x, y)) / float64(len(a)+len(b))
}

// totalMatchSize sums the sizes of the matching blocks between a and b:
// it finds the longest common substring, then recurses into the regions
// to its left and right.
func totalMatchSize(a, b string) int {
	b2j := make(map[byte][]int, len(b))
	for j := 0; j < len(b); j++ {
		b2j[b[j]] = append(b2j[b[j]], j)
	}

	type region struct{ alo, ahi, blo, bhi int }
	stack := []region{{0, len(a), 0, len(b)}}

	total := 0
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i, j, k := longestMatch(a, b2j, r.alo, r.ahi, r.blo, r.bhi)
		if k == 0 {
			continue
		}
		total += k
		stack = append(stack,
			region{r.alo, i, r.blo, j},
			region{i + k, r.ahi, j + k, r.bhi},
		)
	}

	return total
}

// longestMatch finds the longest block a[i:i+k] == b[j:j+k] with
// alo <= i < i+k <= ahi and blo <= j < j+k <= bhi. j2len[j] holds the
// length of the match ending at a[i-1], b[j]; each row extends it.
func longestMatch(a string, b2j map[byte][]int, alo, ahi, blo, bhi int) (besti, bestj, bestk int) {
	besti, bestj = alo, blo

	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		next := make(map[int]int)
		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > bestk {
				besti, bestj, bestk = i-k+1, j-k+1, k
			}
		}
		j2len = next
	}

	return besti, bestj, bestk
}
