package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/lymphiz/internal/diagram"
	"github.com/abhisek/lymphiz/internal/quiz"
	"github.com/abhisek/lymphiz/internal/session"
	"github.com/abhisek/lymphiz/internal/ui/components"
	"github.com/abhisek/lymphiz/internal/ui/theme"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer questions line by line without the full-screen UI",
	Long: `Generate and interactively answer questions on plain stdin/stdout.

Multiple-choice answers take the option number or its exact text. Sequence
answers take one position per shown structure, e.g. "3 1 2".`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().String("mode", string(quiz.ModeNextStep), "Mode: next-step, clinical-case or sequence")
	quizCmd.Flags().Int("count", 5, "Number of questions")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	modeVal, _ := cmd.Flags().GetString("mode")
	count, _ := cmd.Flags().GetInt("count")

	mode, err := quiz.ParseMode(modeVal)
	if err != nil {
		return err
	}
	if count < 1 {
		return fmt.Errorf("invalid count %d: must be positive", count)
	}

	rt, err := loadRuntime(cmd, false)
	if err != nil {
		return err
	}
	defer func() { _ = rt.log.Sync() }()

	sess := rt.newSession()
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	lipgloss.Fprintln(out, theme.Title.Render(mode.DisplayName()))
	fmt.Fprintln(out)

	for i := 1; i <= count; i++ {
		fmt.Fprintf(out, "── Pergunta %d/%d ──\n", i, count)
		var res session.Result
		var err error
		if mode == quiz.ModeSequence {
			res, err = askSequence(sess, in, out)
		} else {
			res, err = askQuestion(sess, mode, in, out)
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out, "\n(entrada encerrada)")
			break
		}
		if err != nil {
			return err
		}
		printResult(out, res)
	}

	printSummary(out, sess.Summary())
	return nil
}

func readLine(in *bufio.Scanner, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(in.Text()), nil
}

func askQuestion(sess *session.Session, mode quiz.Mode, in *bufio.Scanner, out io.Writer) (session.Result, error) {
	q, err := sess.NewQuestion(mode)
	if err != nil {
		return session.Result{}, err
	}
	fmt.Fprintln(out, q.Prompt)
	for j, opt := range q.Options {
		fmt.Fprintf(out, "  %d) %s\n", j+1, opt)
	}

	for {
		line, err := readLine(in, out, "\nSua resposta: ")
		if err != nil {
			return session.Result{}, err
		}
		answer, ok := resolveOption(q.Options, line)
		if !ok {
			fmt.Fprintf(out, "Digite um número de 1 a %d.\n", len(q.Options))
			continue
		}
		return sess.Answer(answer)
	}
}

// resolveOption accepts an option number or the option text itself.
func resolveOption(options []string, line string) (string, bool) {
	if n, err := strconv.Atoi(line); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}
	for _, opt := range options {
		if strings.EqualFold(opt, line) {
			return opt, true
		}
	}
	return "", false
}

func askSequence(sess *session.Session, in *bufio.Scanner, out io.Writer) (session.Result, error) {
	g, err := sess.NewSequence()
	if err != nil {
		return session.Result{}, err
	}
	fmt.Fprintf(out, "%s · %s\nColoque as estruturas na ordem da drenagem:\n", g.OrganName, g.RouteLabel)
	for j, name := range g.Shuffled {
		fmt.Fprintf(out, "  %d) %s\n", j+1, name)
	}

	for {
		line, err := readLine(in, out, "\nPosições: ")
		if err != nil {
			return session.Result{}, err
		}
		positions, err := components.ParsePositions(line)
		if err != nil {
			fmt.Fprintf(out, "Digite %d posições separadas por espaço.\n", g.Len())
			continue
		}
		res, err := sess.AnswerSequence(positions)
		if errors.Is(err, quiz.ErrInvalidPositions) {
			fmt.Fprintf(out, "Use cada posição de 1 a %d, uma por estrutura.\n", g.Len())
			continue
		}
		return res, err
	}
}

func printResult(out io.Writer, res session.Result) {
	switch {
	case res.Correct:
		lipgloss.Fprintln(out, theme.Correct.Render("✓ Correto!"))
	case res.Mode == quiz.ModeSequence:
		lipgloss.Fprintln(out, theme.Incorrect.Render("✗ Incorreto.")+" Ordem correta: "+diagram.Inline(res.Sequence))
	default:
		lipgloss.Fprintln(out, theme.Incorrect.Render("✗ Incorreto.")+" Resposta: "+res.Expected)
	}
	for _, id := range res.Unlocked {
		lipgloss.Fprintln(out, theme.Banner.Render(id.Icon()+"  Conquista desbloqueada: "+id.DisplayName()))
	}
	fmt.Fprintln(out)
}

func printSummary(out io.Writer, sum *session.Summary) {
	fmt.Fprintf(out, "Resultado: %d/%d (%.0f%%)\n", sum.TotalScore, sum.TotalQuestions, sum.Accuracy*100)
	for _, m := range sum.Modes {
		if m.Total == 0 {
			continue
		}
		fmt.Fprintf(out, "  %-14s %d/%d\n", m.Label, m.Score, m.Total)
	}
	if len(sum.Achievements) > 0 {
		names := make([]string, len(sum.Achievements))
		for i, id := range sum.Achievements {
			names[i] = id.DisplayName()
		}
		fmt.Fprintf(out, "Conquistas: %s\n", strings.Join(names, ", "))
	}
}
