package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yokitheyo/recol/recol"
)

const shortUsage = `usage: recol [-i delim] [-o delim] [-h|-H] col1[,col2,...]

options:
  -i delim   input field separator (default: runs of whitespace)
  -o delim   output field separator (default: tab)
  -h         show this message
  -H         show full help with examples
`

const fullUsage = shortUsage + `
recol reads lines from stdin, splits each into fields and prints the
requested columns joined by the output separator. Each spec item is a
1-based column number or str:<text>, which inserts <text> verbatim.
Columns outside the line's field count print as empty.

examples:
  echo "a b c" | recol 2,1               b<TAB>a
  echo "a b c" | recol 1,str:=,3         a<TAB>=<TAB>c
  echo "x,y,z" | recol -i , -o "|" 1,3   x|z
  ps aux | recol 11,1
`

var errMissingSpec = errors.New("missing column spec argument")

func main() {
	var (
		inputDelim  string
		outputDelim string
		fullHelp    bool
		flagsParsed bool
	)

	rootCmd := &cobra.Command{
		Use:           "recol",
		Short:         "reorder columns of delimited input",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flagsParsed = true

			if fullHelp {
				fmt.Print(fullUsage)
				return nil
			}

			if len(args) == 0 {
				return errMissingSpec
			}

			spec, err := recol.ParseSpec(args[0])
			if err != nil {
				return errMissingSpec
			}

			cfg := recol.Config{
				Spec:            spec,
				InputDelim:      inputDelim,
				OutputDelim:     outputDelim,
				SplitWhitespace: !cmd.Flags().Changed("input"),
			}
			return recol.Run(os.Stdin, os.Stdout, cfg)
		},
	}

	rootCmd.Flags().StringVarP(&inputDelim, "input", "i", "", "input field separator")
	rootCmd.Flags().StringVarP(&outputDelim, "output", "o", "\t", "output field separator")
	rootCmd.Flags().BoolVarP(&fullHelp, "full-help", "H", false, "show full help with examples")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		fmt.Print(shortUsage)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "recol:", err)
		switch {
		case errors.Is(err, errMissingSpec):
			fmt.Fprint(os.Stderr, shortUsage)
			os.Exit(2)
		case !flagsParsed:
			// ошибка разбора флагов: неизвестная опция или опция без аргумента
			fmt.Fprint(os.Stderr, shortUsage)
			os.Exit(1)
		default:
			// ошибка ввода-вывода, подсказка по использованию не нужна
			os.Exit(1)
		}
	}
}
