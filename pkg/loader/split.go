package loader

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// TrainTestSplit splits X, Y into train and test sets by ratio.
// The shuffle is driven by seed, so equal seeds give equal splits.
// The test set gets ceil(n*testRatio) rows and the train set keeps the rest.
func TrainTestSplit(X [][]float64, Y []int, testRatio float64, seed int64) (XTrain, XTest [][]float64, YTrain, YTest []int, err error) {
	n := len(X)
	if n == 0 {
		err = errors.New("train test split: no rows")
		return
	}
	if len(Y) != n {
		err = errors.Errorf("train test split: %d rows but %d labels", n, len(Y))
		return
	}
	if math.IsNaN(testRatio) || testRatio < 0 || testRatio >= 1 {
		err = errors.Errorf("train test split: test ratio %v outside [0,1)", testRatio)
		return
	}
	nTest := int(math.Ceil(float64(n) * testRatio))
	if nTest >= n {
		err = errors.Errorf("train test split: ratio %v leaves no training rows out of %d", testRatio, n)
		return
	}

	indices := rand.New(rand.NewSource(seed)).Perm(n)
	for i := range n {
		if i < nTest {
			XTest = append(XTest, X[indices[i]])
			YTest = append(YTest, Y[indices[i]])
		} else {
			XTrain = append(XTrain, X[indices[i]])
			YTrain = append(YTrain, Y[indices[i]])
		}
	}
	return
}
