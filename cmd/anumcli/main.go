// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command anumcli is a small command-line front end over package anumber: it
// tokenizes an expression and evaluates a restricted subset of it (a single
// numeric literal, or two literals joined by one of +, -, *, /), reporting
// the result at a chosen bit precision and base.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-anumber/anumber"
	"github.com/go-anumber/anumber/token"
)

var (
	precBits uint
	base     int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "anumcli",
		Short: "Arbitrary-precision number tools",
		Long:  "anumcli exposes the anumber package's tokenizer, parser, and arithmetic from the command line.",
	}
	root.PersistentFlags().UintVar(&precBits, "prec", 64, "working precision, in bits")
	root.PersistentFlags().IntVar(&base, "base", 10, "numeric base for output (2-36)")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newTokenizeCmd())
	root.AddCommand(newIsPrimeCmd())
	return root
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate a simple numeric expression (a OP b, or a single literal)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := evalSimple(args[0])
			if err != nil {
				return err
			}
			out := result.Text(base)
			if result.TensExp() != 0 {
				// Text leaves out the decimal exponent: print it exactly
				// via String in base 10, or fold it into the binary
				// magnitude first for other bases.
				if base == 10 {
					out = result.String()
				} else {
					out = new(anumber.ANumber).NormalizeFloat(result).Text(base)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize EXPR",
		Short: "Print the token stream for an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tok := token.New(token.NewStringInput(args[0]), &token.Interner{})
			for {
				tk, err := tok.Next()
				if err != nil {
					return err
				}
				if tk.Kind == token.EOF {
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %q\n", tk.Kind, tk.Text)
			}
		},
	}
}

func newIsPrimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isprime N",
		Short: "Report whether N is prime (N must be below the small-primes table limit)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var n uint64
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
				return fmt.Errorf("anumcli: %q is not a non-negative integer", args[0])
			}
			prime, ok := anumber.IsPrimeSmall(n)
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "unknown (outside small-primes table range)")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), prime)
			return nil
		},
	}
}

// evalSimple parses either a single literal or "a OP b" where OP is one of
// +, -, *, /, using the tokenizer to split the expression and anumber to
// parse and compute each side.
func evalSimple(expr string) (*anumber.ANumber, error) {
	tok := token.New(token.NewStringInput(expr), &token.Interner{})

	first, err := tok.Next()
	if err != nil {
		return nil, err
	}
	a := new(anumber.ANumber)
	if _, err := a.FromString(first.Text, 10); err != nil {
		return nil, err
	}

	op, err := tok.Next()
	if err != nil {
		return nil, err
	}
	if op.Kind == token.EOF {
		a.SetPrec(precBits)
		return a, nil
	}
	if op.Kind != token.Operator {
		return nil, anumber.ErrBadLiteral
	}

	second, err := tok.Next()
	if err != nil {
		return nil, err
	}
	b := new(anumber.ANumber)
	if _, err := b.FromString(second.Text, 10); err != nil {
		return nil, err
	}

	z := new(anumber.ANumber).SetPrec(precBits)
	switch op.Text {
	case "+":
		return z.Add(a, b), nil
	case "-":
		return z.Subtract(a, b), nil
	case "*":
		return z.Multiply(a, b), nil
	case "/":
		return z.Divide(a, b)
	default:
		return nil, fmt.Errorf("anumcli: unsupported operator %q", op.Text)
	}
}
