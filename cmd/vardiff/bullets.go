package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/jsnanigans/vardiff/pkg/vardiff"
)

var bulletsCmd = &cobra.Command{
	Use:   "bullets BASE_JSON VARIANT_JSON",
	Short: "Report moved and edited bullets between two resume documents",
	Long: `Reads two resume JSON documents, each with a "bullets" array of
{id, text} objects, and prints one line per variant bullet: its text diff
against the base bullet with the same id, plus a "(was #N)" note when the
bullet changed position. Bullets new to the variant are marked (new);
bullets dropped from the base are listed at the end.

Example:
  vardiff bullets resume.json resume-acme.json`,
	Args: cobra.ExactArgs(2),
	RunE: runBullets,
}

// bulletDoc is one parsed resume document: bullet ids in display order and
// the text attached to each id.
type bulletDoc struct {
	order []string
	text  map[string]string
}

func readBulletDoc(path string) (bulletDoc, error) {
	doc := bulletDoc{text: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("reading %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return doc, fmt.Errorf("%s is not valid JSON", path)
	}

	bullets := gjson.GetBytes(data, "bullets")
	if !bullets.IsArray() {
		return doc, fmt.Errorf("%s has no bullets array", path)
	}
	for _, b := range bullets.Array() {
		id := b.Get("id").String()
		if id == "" {
			return doc, fmt.Errorf("%s has a bullet without an id", path)
		}
		doc.order = append(doc.order, id)
		doc.text[id] = b.Get("text").String()
	}
	return doc, nil
}

func runBullets(cmd *cobra.Command, args []string) error {
	base, err := readBulletDoc(args[0])
	if err != nil {
		return err
	}
	variant, err := readBulletDoc(args[1])
	if err != nil {
		return err
	}

	moves := vardiff.Moves(base.order, variant.order)
	logger.Debug("computed bullet moves",
		zap.Int("base_bullets", len(base.order)),
		zap.Int("variant_bullets", len(variant.order)),
		zap.Int("moved", len(moves)))

	r := vardiff.NewRenderer(plain)
	out := cmd.OutOrStdout()

	for i, id := range variant.order {
		line := fmt.Sprintf("%d. ", i+1)

		baseText, inBase := base.text[id]
		if !inBase {
			line += r.Render(vardiff.WordDiff("", variant.text[id])) + " (new)"
		} else {
			line += r.Render(vardiff.WordDiff(baseText, variant.text[id]))
			if rank, moved := moves[id]; moved {
				line += " " + r.MoveNote(rank)
			}
		}
		fmt.Fprintln(out, line)
	}

	var dropped []string
	for _, id := range base.order {
		if _, ok := variant.text[id]; !ok {
			dropped = append(dropped, id)
		}
	}
	if len(dropped) > 0 {
		fmt.Fprintf(out, "dropped: %s\n", strings.Join(dropped, ", "))
	}
	return nil
}
