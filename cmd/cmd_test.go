package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LYMPHIZ_LOG_FILE", "-")
	t.Setenv("LYMPHIZ_DATASET", "")

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, nil, 0o644))
	rootCmd.SetArgs(append(args, "--env-file", envFile))
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestOrgansCommand(t *testing.T) {
	out, err := execute(t, "", "organs")
	require.NoError(t, err)
	assert.Contains(t, out, "estomago")
	assert.Contains(t, out, "pancreas")
	assert.Contains(t, out, "7 organs")

	body := strings.SplitN(out, "\n\n", 2)[0]
	rows := strings.Split(body, "\n")[2:]
	require.Len(t, rows, 7)
	for _, row := range rows {
		// Everything before the STEPS column spans a fixed number of cells.
		prefix := row[:strings.LastIndex(row, " ")]
		assert.Equal(t, 60, lipgloss.Width(prefix), row)
	}
}

func TestOrgansCommand_MissingEnvFile(t *testing.T) {
	t.Setenv("LYMPHIZ_LOG_FILE", "-")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"organs", "--env-file", filepath.Join(t.TempDir(), "missing.env")})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPadCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"ascii", "Rins"},
		{"precomposed accent", "Pâncreas"},
		{"combining accent", "Pa\u0302ncreas"},
		{"wide runes", "胃"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padCell(tt.in, 12)
			assert.Equal(t, 12, lipgloss.Width(got))
			assert.True(t, strings.HasPrefix(got, tt.in))
		})
	}

	assert.Equal(t, "Intestino Delgado", padCell("Intestino Delgado", 4), "longer values are not cut")
}

func TestRouteCommand(t *testing.T) {
	out, err := execute(t, "", "route", "rins", "1", "--inline")
	require.NoError(t, err)
	assert.Contains(t, out, "Drenagem Renal")
	assert.Contains(t, out, "Cisterna do quilo")

	_, err = execute(t, "", "route", "coracao")
	assert.ErrorContains(t, err, "unknown organ")

	_, err = execute(t, "", "route", "rins", "9")
	assert.ErrorContains(t, err, "invalid route index")
}

func TestQuizCommand_ReadsAnswersUntilEOF(t *testing.T) {
	out, err := execute(t, "1\n7\n2\n", "quiz", "--mode", "next", "--count", "3", "--seed", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Pergunta 1/3")
	assert.Contains(t, out, "Digite um número de 1 a 4")
	assert.Contains(t, out, "(entrada encerrada)")
	assert.Contains(t, out, "Resultado: ")
	assert.Contains(t, out, "/2 (")
}

func TestQuizCommand_Sequence(t *testing.T) {
	out, err := execute(t, "x\n", "quiz", "--mode", "sequence", "--count", "1", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Coloque as estruturas na ordem")
	assert.Contains(t, out, "posições separadas por espaço")
}

func TestQuizCommand_BadFlags(t *testing.T) {
	_, err := execute(t, "", "quiz", "--mode", "essay")
	assert.Error(t, err)

	_, err = execute(t, "", "quiz", "--mode", "next-step", "--count", "0")
	assert.ErrorContains(t, err, "invalid count")
}

func TestResolveOption(t *testing.T) {
	opts := []string{"Alfa", "Beta", "Gama", "Delta"}
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2", "Beta", true},
		{"gama", "Gama", true},
		{"0", "", false},
		{"5", "", false},
		{"Ômega", "", false},
	}
	for _, tt := range tests {
		got, ok := resolveOption(opts, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
