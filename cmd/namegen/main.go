// Command namegen asks a running server for Chinese name suggestions and
// prints them as cards.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/danielhkuo/chinese-namegen/client"
	"github.com/danielhkuo/chinese-namegen/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	defaultServer  = "http://localhost:3000"
	defaultTimeout = 90 * time.Second

	emptyNameAlert = "请输入您的英文名！"
	failurePrefix  = "生成名字时出错："
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// spinner prints a loading line to w and clears it on Hide
type spinner struct {
	w io.Writer
}

func (s spinner) Show() { fmt.Fprint(s.w, "正在生成名字...") }
func (s spinner) Hide() { fmt.Fprint(s.w, "\r\033[K") }

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("NAMEGEN")
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "namegen <english-name>",
		Short:         "Generate Chinese names for an English name",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var english string
			if len(args) == 1 {
				english = args[0]
			}

			gender := strings.ToLower(v.GetString("gender"))
			if gender != models.GenderMale && gender != models.GenderFemale {
				err := fmt.Errorf("gender must be %s or %s, got %q", models.GenderMale, models.GenderFemale, gender)
				fmt.Fprintln(stderr, failurePrefix+err.Error())
				return err
			}

			c := client.New(
				v.GetString("server"),
				&http.Client{Timeout: v.GetDuration("timeout")},
				client.WithIndicator(spinner{w: stderr}),
			)

			names, err := c.Generate(cmd.Context(), models.NameRequest{
				EnglishName:  english,
				Gender:       gender,
				Requirements: v.GetString("requirements"),
			})
			if errors.Is(err, client.ErrValidation) {
				fmt.Fprintln(stderr, emptyNameAlert)
				return err
			}
			if err != nil {
				fmt.Fprintln(stderr, failurePrefix+err.Error())
				return err
			}

			return client.RenderCards(stdout, names)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetContext(context.Background())

	flags := cmd.Flags()
	flags.StringP("server", "s", defaultServer, "Base URL of the name server (env NAMEGEN_SERVER)")
	flags.StringP("gender", "g", models.GenderMale, "Gender: male or female (env NAMEGEN_GENDER)")
	flags.StringP("requirements", "r", "", "Free-text naming requirements (env NAMEGEN_REQUIREMENTS)")
	flags.Duration("timeout", defaultTimeout, "Overall request timeout (env NAMEGEN_TIMEOUT)")

	for _, name := range []string{"server", "gender", "requirements", "timeout"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	return cmd
}
