// Package review implements the interactive reconciliation loop for
// installed-but-undeclared packages.
//
// Every package queued per backend is shown to the user, who decides to
// delete it, mark it as a dependency, assign it to a group, skip it, or
// quit. Decisions are aggregated into one strategy per backend, previewed,
// confirmed once for the whole batch, and executed strictly in backend
// order. Execution has no rollback: a failure in backend N leaves earlier
// backends already mutated.
package review

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/declaro/declaro/internal/backend"
	"github.com/declaro/declaro/internal/model"
)

// Terminal is the interactive input source. All methods block until the
// user responds and fail only on I/O errors.
type Terminal interface {
	// ReadChar reads one lowercased keystroke.
	ReadChar() (byte, error)

	// ReadLine reads one line without its trailing newline.
	ReadLine() (string, error)

	// Confirm asks a yes/no question, defaulting to no.
	Confirm(prompt string) (bool, error)
}

// Reviewer drives review sessions.
type Reviewer struct {
	term   Terminal
	out    io.Writer
	writer GroupWriter
}

func NewReviewer(term Terminal, out io.Writer, writer GroupWriter) *Reviewer {
	return &Reviewer{term: term, out: out, writer: writer}
}

// Run reconciles the queued packages with the user's decisions. It
// returns nil when there was nothing to do, when the user quit or
// declined the confirmation, and after successful execution; quitting
// mid-session discards every decision already made in it.
func (r *Reviewer) Run(ctx context.Context, todo *backend.ToDo, groups []*model.Group) error {
	model.SortGroups(groups)

	if todo.NothingToDo() {
		fmt.Fprintln(r.out, "nothing to do")
		return nil
	}

	var reviews reviewsPerBackend
	for _, item := range todo.Items() {
		var actions []action
		for _, pkg := range item.Packages {
			fmt.Fprintf(r.out, "%s: %s\n", item.Backend.Section(), pkg)
			keepGoing, err := r.reviewPackage(ctx, pkg, groups, &actions, item.Backend)
			if err != nil {
				return err
			}
			if !keepGoing {
				return nil
			}
		}
		reviews.push(item.Backend, actions)
	}

	if reviews.nothingToDo() {
		fmt.Fprintln(r.out, "nothing to do")
		return nil
	}

	strategies := reviews.intoStrategies()

	fmt.Fprintln(r.out)
	for i, s := range strategies {
		s.show(r.out)
		if i < len(strategies)-1 {
			fmt.Fprintln(r.out)
		}
	}
	fmt.Fprintln(r.out)

	ok, err := r.term.Confirm("Continue?")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	for _, s := range strategies {
		if err := s.execute(ctx, r.writer); err != nil {
			return err
		}
	}
	return nil
}

// reviewPackage asks until the package has a terminal decision. The
// boolean return is false when the user quit, which ends the whole
// session; errors come from the terminal or the backend's info query.
func (r *Reviewer) reviewPackage(ctx context.Context, pkg model.Package, groups []*model.Group, actions *[]action, b backend.Backend) (bool, error) {
	for {
		in, err := r.askIntention(b.SupportsAsDependency(), len(groups) > 0)
		if err != nil {
			return false, err
		}

		switch in {
		case intentionAsDependency:
			if !b.SupportsAsDependency() {
				panic("backend does not support dependencies")
			}
			*actions = append(*actions, asDependencyAction(pkg))
			return true, nil
		case intentionAssignGroup:
			group, err := r.askGroup(groups)
			if err != nil {
				return false, err
			}
			if group != nil {
				*actions = append(*actions, assignGroupAction(pkg, group))
				return true, nil
			}
		case intentionDelete:
			*actions = append(*actions, deleteAction(pkg))
			return true, nil
		case intentionInfo:
			if err := b.ShowPackageInfo(ctx, pkg); err != nil {
				return false, fmt.Errorf("querying package info for %s: %w", pkg, err)
			}
		case intentionInvalid:
			// re-ask
		case intentionSkip:
			return true, nil
		case intentionQuit:
			return false, nil
		}
	}
}

func (r *Reviewer) askIntention(supportsAsDependency, hasGroups bool) (intention, error) {
	fmt.Fprint(r.out, intentionQuery(supportsAsDependency, hasGroups))

	c, err := r.term.ReadChar()
	if err != nil {
		return intentionInvalid, err
	}
	return parseIntention(c, supportsAsDependency, hasGroups), nil
}

// intentionQuery builds the action prompt, omitting options the current
// context cannot serve.
func intentionQuery(supportsAsDependency, hasGroups bool) string {
	var query strings.Builder
	if hasGroups {
		query.WriteString("assign to (g)roup, ")
	}
	query.WriteString("(d)elete, (s)kip, (i)nfo, ")
	if supportsAsDependency {
		query.WriteString("(a)s dependency, ")
	}
	query.WriteString("(q)uit? ")
	return query.String()
}

// askGroup lists every known group with a zero-based index and reads one.
// Any input that is not an index of a known group means "no group
// selected", which sends the caller back to the action prompt. Only
// reachable with a non-empty group set.
func (r *Reviewer) askGroup(groups []*model.Group) (*model.Group, error) {
	width := groupIndexWidth(len(groups))
	for i, g := range groups {
		fmt.Fprintf(r.out, "%*d: %s\n", width, i, g.Name)
	}

	line, err := r.term.ReadLine()
	if err != nil {
		return nil, err
	}

	idx, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || idx < 0 || idx >= len(groups) {
		return nil, nil
	}
	return groups[idx], nil
}

// groupIndexWidth is the display width of the largest index for count
// groups. count must be positive.
func groupIndexWidth(count int) int {
	return len(strconv.Itoa(count))
}
