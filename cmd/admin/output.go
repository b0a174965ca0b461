package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/remote"
	"github.com/joefazee/directory-admin/internal/validator"
)

func (s *session) success(key, subject string) {
	fmt.Fprintln(s.out, s.styles.Success.Render(s.msg.T(key, subject)))
}

func (s *session) table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(s.out, s.styles.Muted.Render(s.msg.T(i18n.NoResults)))
		return
	}
	fmt.Fprint(s.out, s.styles.Table(headers, rows))
}

// confirm asks before a delete. Anything but y or yes declines.
func (s *session) confirm(subject string, yes bool) bool {
	if yes {
		return true
	}
	fmt.Fprint(s.out, s.styles.Warning.Render(s.msg.T(i18n.ConfirmDelete, subject))+" ")
	answer, _ := s.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	fmt.Fprintln(s.out, s.styles.Muted.Render(s.msg.T(i18n.Aborted)))
	return false
}

// report prints err for the operator and returns it so the exit code is set.
func (s *session) report(err error) error {
	var ve *validator.ValidationError
	switch {
	case errors.As(err, &ve):
		fmt.Fprintln(s.errOut, s.styles.Error.Render(ve.Message))
		keys := make([]string, 0, len(ve.Fields))
		for k := range ve.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintln(s.errOut, s.styles.Muted.Render("  "+k+": ")+s.styles.Error.Render(ve.Fields[k]))
		}
	case remote.IsTransport(err):
		fmt.Fprintln(s.errOut, s.styles.Error.Render(s.msg.T(i18n.UpstreamUnavailable)))
	default:
		if apiErr, ok := remote.AsAPIError(err); ok {
			fmt.Fprintln(s.errOut, s.styles.Error.Render(s.msg.T(i18n.UpstreamRejected, apiErr.Message)))
			break
		}
		fmt.Fprintln(s.errOut, s.styles.Error.Render(err.Error()))
	}
	return err
}

func (s *session) count(n int) string {
	return s.msg.Number(float64(n), 0)
}
