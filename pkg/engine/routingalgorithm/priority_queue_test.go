package routingalgorithm_test

import (
	"testing"

	"github.com/AgnesBressan/AirRouteAM/pkg/engine/routingalgorithm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinHeap(t *testing.T) {
	t.Run("extracts in rank order", func(t *testing.T) {
		h := routingalgorithm.NewMinHeap[string]()
		for _, n := range []struct {
			rank float64
			item string
		}{{5, "e"}, {1, "a"}, {3, "c"}, {2, "b"}, {4, "d"}} {
			h.Insert(n.rank, n.item)
		}

		min, err := h.GetMin()
		require.NoError(t, err)
		assert.Equal(t, "a", min.Item)

		got := []string{}
		for h.Size() > 0 {
			n, err := h.ExtractMin()
			require.NoError(t, err)
			got = append(got, n.Item)
		}
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
	})

	t.Run("equal ranks pop in insertion order", func(t *testing.T) {
		h := routingalgorithm.NewMinHeap[string]()
		h.Insert(10, "first")
		h.Insert(7, "low")
		h.Insert(10, "second")
		h.Insert(10, "third")
		h.Insert(10, "first")

		got := []string{}
		for h.Size() > 0 {
			n, _ := h.ExtractMin()
			got = append(got, n.Item)
		}
		assert.Equal(t, []string{"low", "first", "second", "third", "first"}, got)
	})

	t.Run("empty heap", func(t *testing.T) {
		h := routingalgorithm.NewMinHeap[int]()
		_, err := h.ExtractMin()
		assert.Error(t, err)
		_, err = h.GetMin()
		assert.Error(t, err)
	})
}
