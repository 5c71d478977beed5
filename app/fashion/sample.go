package fashion

import (
	"math/rand"

	"github.com/lysyi3m/catalog-merge/app/dataset"
)

// Sample draws n rows without replacement. The same seed always picks the
// same rows. When n covers the whole table every row is kept, shuffled.
func Sample(t *dataset.Table, n int, seed int64) *dataset.Table {
	if n > t.Len() {
		n = t.Len()
	}
	if n < 0 {
		n = 0
	}

	rng := rand.New(rand.NewSource(seed))
	return t.Subset(rng.Perm(t.Len())[:n])
}
