package adapton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThunk(t *testing.T) {
	t.Run("derives value from refs", func(t *testing.T) {
		log := []string{}

		count := NewRef(1)
		double := NewThunk(func() int {
			log = append(log, "doubling")
			return count.Read() * 2
		})
		plustwo := NewThunk(func() int {
			log = append(log, "adding")
			return double.Read() + 2
		})

		assert.Equal(t, 1, count.Read())
		assert.Equal(t, 2, double.Read())
		assert.Equal(t, 4, plustwo.Read())

		count.Set(10)
		assert.Equal(t, 10, count.Read())
		assert.Equal(t, 20, double.Read())
		assert.Equal(t, 22, plustwo.Read())

		assert.Equal(t, []string{
			"doubling",
			"adding",
			"doubling",
			"adding",
		}, log)
	})

	t.Run("memoizes while clean", func(t *testing.T) {
		runs := 0

		count := NewRef(1)
		double := NewThunk(func() int {
			runs++
			return count.Read() * 2
		})

		assert.Equal(t, 2, double.Read())
		assert.Equal(t, 2, double.Read())
		assert.Equal(t, 1, runs)

		count.Set(3)
		assert.Equal(t, 6, double.Read())
		assert.Equal(t, 2, runs)
	})

	t.Run("recomputes through nested thunks", func(t *testing.T) {
		r := NewRef(5)
		a := NewThunk(func() int {
			return r.Read() + 3
		})

		assert.Equal(t, 8, a.Read())

		r.Set(2)
		assert.Equal(t, 5, a.Read())

		s := NewRef(4)
		b := NewThunk(func() int {
			return a.Read() + s.Read()
		})

		assert.Equal(t, 9, b.Read())

		r.Set(4)
		s.Set(5)
		assert.Equal(t, 12, b.Read())
	})

	t.Run("rediscovers dependencies on every run", func(t *testing.T) {
		useFirst := NewRef(true)
		first := NewRef(10)
		second := NewRef(20)

		runs := 0
		pick := NewThunk(func() int {
			runs++
			if useFirst.Read() {
				return first.Read()
			}
			return second.Read()
		})

		assert.Equal(t, 10, pick.Read())

		useFirst.Set(false)
		assert.Equal(t, 20, pick.Read())
		assert.Equal(t, 2, runs)

		// first is no longer a dependency; writing it must not invalidate pick
		first.Set(99)
		assert.Equal(t, 20, pick.Read())
		assert.Equal(t, 2, runs)

		second.Set(30)
		assert.Equal(t, 30, pick.Read())
		assert.Equal(t, 3, runs)
	})

	t.Run("matches a fresh evaluation after any write sequence", func(t *testing.T) {
		x := NewRef(1)
		y := NewRef(2)
		z := NewRef(3)

		sum := NewThunk(func() int { return x.Read() + y.Read() })
		prod := NewThunk(func() int { return sum.Read() * z.Read() })

		fresh := func(xv, yv, zv int) int { return (xv + yv) * zv }

		assert.Equal(t, fresh(1, 2, 3), prod.Read())

		x.Set(10)
		assert.Equal(t, fresh(10, 2, 3), prod.Read())

		z.Set(0)
		y.Set(-2)
		assert.Equal(t, fresh(10, -2, 0), prod.Read())

		x.Set(7)
		x.Set(8)
		assert.Equal(t, fresh(8, -2, 0), prod.Read())
	})

	t.Run("corrects a computation that writes its own input", func(t *testing.T) {
		count := NewRef(0)

		runs := 0
		settle := NewThunk(func() int {
			runs++
			v := count.Read()
			if v < 3 {
				count.Set(v + 1)
			}
			return v
		})

		assert.Equal(t, 3, settle.Read())
		assert.Equal(t, 4, runs)
	})

	t.Run("a panicking computation keeps its previous value", func(t *testing.T) {
		boom := NewRef(false)
		v := NewRef(1)

		th := NewThunk(func() int {
			if boom.Read() {
				panic("boom")
			}
			return v.Read()
		})

		assert.Equal(t, 1, th.Read())

		boom.Set(true)
		assert.PanicsWithValue(t, "boom", func() { th.Read() })

		// the failed run left the thunk clean with the stale value
		assert.Equal(t, 1, th.Read())
	})

	t.Run("invalidate forces a rerun", func(t *testing.T) {
		runs := 0
		th := NewThunk(func() int {
			runs++
			return runs
		})

		assert.Equal(t, 1, th.Read())
		assert.Equal(t, 1, th.Read())

		th.Invalidate()
		assert.Equal(t, 2, th.Read())
	})
}
