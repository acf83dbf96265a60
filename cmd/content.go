package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/lingo/internal/curriculum"
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content [file]",
	Short: "Validate course content",
	Long:  "Validates a course JSON file against the content schema. With no argument, checks the embedded course.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if err := curriculum.Load(); err != nil {
				return fmt.Errorf("embedded course: %w", err)
			}
			lessons := 0
			for _, u := range curriculum.Units() {
				lessons += len(u.Lessons)
			}
			fmt.Printf("embedded course OK: %q, %d unit(s), %d lesson(s)\n",
				curriculum.Title(), len(curriculum.Units()), lessons)
			return nil
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		course, err := curriculum.ParseCourse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		lessons := 0
		for _, u := range course.Units {
			lessons += len(u.Lessons)
		}
		fmt.Printf("%s OK: %q, %d unit(s), %d lesson(s)\n",
			args[0], course.Title, len(course.Units), lessons)
		return nil
	},
}
