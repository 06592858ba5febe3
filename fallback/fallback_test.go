// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fallback

import (
	"math"
	"testing"

	"github.com/go-anumber/anumber"
)

func near(t *testing.T, got *anumber.ANumber, want float64, tol float64) {
	t.Helper()
	f, ok := got.Float64()
	if !ok {
		t.Fatalf("Float64() overflow for %s", got.String())
	}
	if math.Abs(f-want) > tol {
		t.Errorf("got %v, want %v (tol %v)", f, want, tol)
	}
}

func TestSinCos(t *testing.T) {
	x := anumber.NewInt(0).SetFloat64(math.Pi / 2)
	s, err := Sin(new(anumber.ANumber), x)
	if err != nil {
		t.Fatal(err)
	}
	near(t, s, 1, 1e-9)

	c, err := Cos(new(anumber.ANumber), x)
	if err != nil {
		t.Fatal(err)
	}
	near(t, c, 0, 1e-9)
}

func TestExpLn(t *testing.T) {
	one := anumber.NewInt(1)
	e, err := Exp(new(anumber.ANumber), one)
	if err != nil {
		t.Fatal(err)
	}
	near(t, e, math.E, 1e-9)

	l, err := Ln(new(anumber.ANumber), e)
	if err != nil {
		t.Fatal(err)
	}
	near(t, l, 1, 1e-6)
}

func TestLnDomainError(t *testing.T) {
	if _, err := Ln(new(anumber.ANumber), anumber.NewInt(-1)); err != anumber.ErrDomainOverflow {
		t.Errorf("Ln(-1): got %v, want ErrDomainOverflow", err)
	}
}

func TestArcSinDomainError(t *testing.T) {
	if _, err := ArcSin(new(anumber.ANumber), anumber.NewInt(2)); err != anumber.ErrDomainOverflow {
		t.Errorf("ArcSin(2): got %v, want ErrDomainOverflow", err)
	}
}

func TestPi(t *testing.T) {
	p := Pi(new(anumber.ANumber))
	near(t, p, math.Pi, 1e-9)
}

func TestModDivByZero(t *testing.T) {
	if _, err := Mod(new(anumber.ANumber), anumber.NewInt(1), anumber.NewInt(0)); err != anumber.ErrDivByZero {
		t.Errorf("Mod by zero: got %v, want ErrDivByZero", err)
	}
}
