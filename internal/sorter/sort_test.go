package sorter

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	logerrors "github.com/theketchio/logsort/internal/errors"
)

func TestSort(t *testing.T) {
	tt := []struct {
		name     string
		unsorted Dataset
		sorted   Dataset
		wantErr  bool
	}{
		{
			name: "happy path",
			unsorted: Dataset{
				{"b", "2"},
				{"a", "1"},
				{"a", "3"},
			},
			sorted: Dataset{
				{"a", "1"},
				{"a", "3"},
				{"b", "2"},
			},
		},
		{
			name:     "empty dataset",
			unsorted: Dataset{},
			sorted:   Dataset{},
		},
		{
			name:     "single row",
			unsorted: Dataset{{"x"}},
			sorted:   Dataset{{"x"}},
		},
		{
			name: "rows of different lengths",
			unsorted: Dataset{
				{"x", "z", "y"},
				{"w"},
				{"v", "a", "b", "d"},
			},
			sorted: Dataset{
				{"v", "a", "b", "d"},
				{"w"},
				{"x", "z", "y"},
			},
		},
		{
			name: "only the first column is compared",
			unsorted: Dataset{
				{"x", "c"},
				{"x", "a"},
				{"x", "b"},
			},
			sorted: Dataset{
				{"x", "c"},
				{"x", "a"},
				{"x", "b"},
			},
		},
		{
			name: "ordinal, not numeric or case folded",
			unsorted: Dataset{
				{"10"},
				{"9"},
				{"a"},
				{"B"},
				{""},
			},
			sorted: Dataset{
				{""},
				{"10"},
				{"9"},
				{"B"},
				{"a"},
			},
		},
		{
			name: "row without fields",
			unsorted: Dataset{
				{"b"},
				{},
				{"a"},
			},
			wantErr: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			err := Sort(tc.unsorted)
			if tc.wantErr {
				require.NotNil(t, err)
				require.Equal(t, logerrors.MalformedRow, logerrors.KindOf(err))
				require.ErrorIs(t, err, logerrors.ErrEmptyRow)
				return
			}
			require.Nil(t, err)
			require.Equal(t, tc.sorted, tc.unsorted)
		})
	}
}

func TestSort_rowWithoutFieldsLeavesInputUntouched(t *testing.T) {
	ds := Dataset{{"b"}, {"a"}, nil}
	err := Sort(ds)
	require.Error(t, err)
	require.Contains(t, err.Error(), "row 3")
	require.Equal(t, Dataset{{"b"}, {"a"}, nil}, ds)
}

func TestSort_properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	keys := []string{"a", "b", "c", "aa", "B", "1", "10", "2", ""}

	for n := 0; n < 50; n++ {
		ds := make(Dataset, rnd.Intn(40))
		for i := range ds {
			// field 1 records the input position so stability can be checked
			ds[i] = Row{keys[rnd.Intn(len(keys))], strconv.Itoa(i)}
		}
		input := clone(ds)

		require.NoError(t, Sort(ds))

		require.Len(t, ds, len(input))
		require.ElementsMatch(t, input, ds)
		require.True(t, IsSorted(ds))
		for i := 1; i < len(ds); i++ {
			require.LessOrEqual(t, ds[i-1][0], ds[i][0])
			if ds[i-1][0] == ds[i][0] {
				prev, _ := strconv.Atoi(ds[i-1][1])
				cur, _ := strconv.Atoi(ds[i][1])
				require.Less(t, prev, cur, fmt.Sprintf("rows with key %q lost their input order", ds[i][0]))
			}
		}

		again := clone(ds)
		require.NoError(t, Sort(again))
		require.Equal(t, ds, again)
	}
}

func TestSort_matchesSliceStable(t *testing.T) {
	ds := Dataset{{"b", "1"}, {"a", "2"}, {"b", "3"}, {"a", "4"}, {"c", "5"}}
	want := clone(ds)
	sort.SliceStable(want, func(i, j int) bool { return want[i][0] < want[j][0] })

	require.NoError(t, Sort(ds))
	require.Equal(t, want, ds)
}

func TestRow_Key(t *testing.T) {
	key, ok := Row{"k", "v"}.Key()
	require.True(t, ok)
	require.Equal(t, "k", key)

	_, ok = Row{}.Key()
	require.False(t, ok)
}

func clone(ds Dataset) Dataset {
	out := make(Dataset, len(ds))
	for i, row := range ds {
		out[i] = append(Row(nil), row...)
	}
	return out
}
