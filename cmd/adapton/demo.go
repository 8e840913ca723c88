package main

import (
	"fmt"

	"github.com/AnatoleLucet/adapton"
)

func demoSubtraction() {
	fmt.Println("# subtraction")

	r1 := adapton.NewRef(8)
	r2 := adapton.NewRef(10)
	a := adapton.NewThunk(func() int {
		return r1.Read() - r2.Read()
	})

	fmt.Println("a =", a.Peek())

	r1.Set(2)
	fmt.Println("set r1 = 2")
	fmt.Println("a =", a.Peek())
}

func demoPlusThree() {
	fmt.Println("# plus three")

	r := adapton.NewRef(5)
	a := adapton.NewThunk(func() int {
		return r.Read() + 3
	})

	fmt.Println("a =", a.Read())

	r.Set(2)
	fmt.Println("set r = 2")
	fmt.Println("a =", a.Read())
}

func demoTwoInputs() {
	fmt.Println("# two inputs")

	r := adapton.NewRef(2)
	a := adapton.NewThunk(func() int {
		return r.Read() + 3
	})

	s := adapton.NewRef(4)
	b := adapton.NewThunk(func() int {
		return a.Read() + s.Read()
	})

	fmt.Println("b =", b.Read())

	r.Set(4)
	s.Set(5)
	fmt.Println("set r = 4, s = 5")
	fmt.Println("b =", b.Read())
}
