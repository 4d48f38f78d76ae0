package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"tavernkeep/internal/world"
)

//go:embed tutorial/*.md
var lessonFS embed.FS

var lessons = template.Must(template.ParseFS(lessonFS, "tutorial/*.md"))

type TutorialStep int

const (
	TutorialIntroduction TutorialStep = iota
	TutorialInn
	TutorialSave
	TutorialNpc
	TutorialNpcOther
	TutorialSaveByName
	TutorialJournal
	TutorialLoadByName
	TutorialSpell
	TutorialWeapons
	TutorialRoll
	TutorialDelete
	TutorialAdjustTime
	TutorialTime
	TutorialConclusion
)

// lessonFiles maps each step to the lesson shown on entering it.
var lessonFiles = map[TutorialStep]string{
	TutorialInn:        "01-inn.md",
	TutorialSave:       "02-save.md",
	TutorialNpc:        "03-npc.md",
	TutorialNpcOther:   "04-npc-other.md",
	TutorialSaveByName: "05-save-by-name.md",
	TutorialJournal:    "06-journal.md",
	TutorialLoadByName: "07-load-by-name.md",
	TutorialSpell:      "08-spell.md",
	TutorialWeapons:    "09-weapons.md",
	TutorialRoll:       "10-roll.md",
	TutorialDelete:     "11-delete.md",
	TutorialAdjustTime: "12-adjust-time.md",
	TutorialTime:       "13-time.md",
	TutorialConclusion: "14-conclusion.md",
}

const (
	finishedLesson = "99-finished.md"
	stillActive    = "xx-still-active.md"
)

// TutorialCommand is one checkpoint of the guided tour. While the tour runs,
// a strict wildcard alias routes every input to the current checkpoint,
// which runs the input as usual if it is the one the lesson asked for.
type TutorialCommand struct {
	Step         TutorialStep
	InnName      string
	NpcName      string
	OtherNpcName string
	NpcGender    world.Gender
}

func (TutorialCommand) isCommand() {}

func (TutorialCommand) String() string { return "tutorial" }

func (c TutorialCommand) Run(ctx context.Context, input string, meta *AppMeta) (string, error) {
	if c.Step == TutorialIntroduction {
		next := c.to(TutorialInn)
		meta.Aliases.Insert(LiteralAlias("next", "continue the tutorial", next))
		meta.Aliases.Insert(StrictWildcardAlias(next))
		return next.lesson()
	}

	if c.Step == TutorialInn {
		if input != "next" {
			return c.reject(meta)
		}
		return c.advance(c.to(TutorialSave), "", nil, meta)
	}

	if !c.accepts(input) {
		return c.reject(meta)
	}

	out, err := parseIrrefutable(input, meta).Run(ctx, input, meta)

	switch c.Step {
	case TutorialSave:
		if err != nil {
			return c.stay(out, err, meta)
		}
		next := c.to(TutorialNpc)
		next.InnName = firstLine(out)
		return c.advance(next, out, nil, meta)

	case TutorialNpcOther:
		if err != nil {
			return c.stay(out, err, meta)
		}
		next, ok := c.scrapeNpcs(out, meta)
		if !ok {
			return c.stay(out, nil, meta)
		}
		return c.advance(next, out, nil, meta)

	case TutorialSaveByName:
		if err != nil {
			return c.stay(out, err, meta)
		}
		return c.advance(c.to(TutorialJournal), out, nil, meta)

	case TutorialConclusion:
		if err != nil {
			return "", err
		}
		finished, lessonErr := renderLesson(finishedLesson, c)
		if lessonErr != nil {
			return "", lessonErr
		}
		return out + "\n\n#" + finished, nil

	default:
		return c.advance(c.to(c.Step+1), out, err, meta)
	}
}

// accepts reports whether input is what the current lesson asked for.
func (c TutorialCommand) accepts(input string) bool {
	switch c.Step {
	case TutorialSave:
		return input == "inn"
	case TutorialNpc:
		return input == "save" || input == "save "+c.InnName
	case TutorialNpcOther:
		return input == "npc"
	case TutorialSaveByName:
		return input == "1" || input == c.NpcName || input == "load "+c.NpcName
	case TutorialJournal:
		return input == "save" || input == "save "+c.NpcName
	case TutorialLoadByName:
		return input == "journal"
	case TutorialSpell:
		return input == c.NpcName || input == "load "+c.NpcName
	case TutorialWeapons:
		return input == "Fireball"
	case TutorialRoll:
		return input == "weapons"
	case TutorialDelete:
		return input == "d20+4"
	case TutorialAdjustTime:
		return input == "delete "+c.NpcName
	case TutorialTime:
		return input == "+30m"
	case TutorialConclusion:
		return input == "time" || input == "date" || input == "now"
	default:
		return false
	}
}

// to returns the checkpoint step, carrying over everything captured so far.
func (c TutorialCommand) to(step TutorialStep) TutorialCommand {
	next := c
	next.Step = step
	return next
}

// advance moves the tour to next, appending its lesson beneath the output
// of the command that was run. A failed command still advances the tour.
func (c TutorialCommand) advance(next TutorialCommand, out string, cmdErr error, meta *AppMeta) (string, error) {
	meta.Aliases.Insert(StrictWildcardAlias(next))

	lesson, err := next.lesson()
	if err != nil {
		return "", err
	}

	text := out
	if cmdErr != nil {
		text = cmdErr.Error()
	}
	if text != "" {
		text += "\n\n#" + lesson
	} else {
		text = lesson
	}

	if cmdErr != nil {
		return "", errors.New(text)
	}
	return text, nil
}

// stay keeps the tour on the current checkpoint after the command ran but
// produced nothing to continue from.
func (c TutorialCommand) stay(out string, err error, meta *AppMeta) (string, error) {
	meta.Aliases.Insert(StrictWildcardAlias(c))
	return out, err
}

func (c TutorialCommand) reject(meta *AppMeta) (string, error) {
	meta.Aliases.Insert(StrictWildcardAlias(c))
	return renderLesson(stillActive, c)
}

func (c TutorialCommand) lesson() (string, error) {
	file, ok := lessonFiles[c.Step]
	if !ok {
		return "", fmt.Errorf("no lesson for tutorial step %d", c.Step)
	}
	return renderLesson(file, c)
}

type lessonData struct {
	InnName      string
	NpcName      string
	OtherNpcName string
	Gender       world.Gender
}

func renderLesson(name string, c TutorialCommand) (string, error) {
	var b strings.Builder
	err := lessons.ExecuteTemplate(&b, name, lessonData{
		InnName:      c.InnName,
		NpcName:      c.NpcName,
		OtherNpcName: c.OtherNpcName,
		Gender:       c.NpcGender,
	})
	if err != nil {
		return "", fmt.Errorf("rendering lesson %s: %w", name, err)
	}
	return strings.TrimSpace(b.String()), nil
}

// scrapeNpcs picks the names out of the character creation output: the
// heading names the generated character and the "~1~" line its first
// alternative.
func (c TutorialCommand) scrapeNpcs(out string, meta *AppMeta) (TutorialCommand, bool) {
	next := c.to(TutorialSaveByName)
	next.OtherNpcName = firstLine(out)

	for _, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "~1~ ") {
			continue
		}
		start, end := strings.Index(line, "`"), strings.LastIndex(line, "`")
		if start >= 0 && end > start {
			next.NpcName = line[start+1 : end]
		}
		break
	}
	if next.NpcName == "" || next.OtherNpcName == "" {
		return c, false
	}

	for _, t := range meta.Repository.Recent() {
		if world.NameEquals(t, next.NpcName) {
			next.NpcGender = world.PronounsOf(t)
			return next, true
		}
	}
	return c, false
}

func firstLine(out string) string {
	line, _, _ := strings.Cut(out, "\n")
	return strings.TrimLeft(line, " #")
}

func parseTutorialCommand(input string, _ *AppMeta) (Command, []Command) {
	if input == "tutorial" {
		return TutorialCommand{Step: TutorialIntroduction}, nil
	}
	return nil, nil
}

func autocompleteTutorialCommand(input string, _ *AppMeta) []Suggestion {
	if hasWordPrefix("tutorial", input) {
		return []Suggestion{{Text: "tutorial", Summary: "feature walkthrough"}}
	}
	return nil
}
