package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pixil98/go-deadwood/internal/game"
)

const maxSeatingTries = 5

// Seat runs the casting call: it asks how many are playing and what each
// player is called, then reads the list back for confirmation.
func Seat(r *bufio.Reader, w io.Writer) ([]string, error) {
	io.WriteString(w, "Welcome to Deadwood!\n")

	for {
		countStr, err := Prompt(r, w, fmt.Sprintf("How many players (%d-%d)? ", game.MinPlayers, game.MaxPlayers),
			WithMaxTries(maxSeatingTries),
			WithValidator(func(str string) (bool, string) {
				n, err := strconv.Atoi(str)
				if err != nil || n < game.MinPlayers || n > game.MaxPlayers {
					return false, fmt.Sprintf("Enter a number from %d to %d.\n", game.MinPlayers, game.MaxPlayers)
				}
				return true, ""
			}),
		)
		if err != nil {
			return nil, err
		}
		count, _ := strconv.Atoi(countStr)

		names := make([]string, 0, count)
		for i := range count {
			name, err := Prompt(r, w, fmt.Sprintf("Name for player %d: ", i+1),
				WithMaxTries(maxSeatingTries),
				WithValidator(func(str string) (bool, string) {
					return validName(str, names)
				}),
			)
			if err != nil {
				return nil, err
			}
			names = append(names, name)
		}

		ok, err := PromptYN(r, w, fmt.Sprintf("Seating %s. Did I get that right (Y/N)? ", strings.Join(names, ", ")))
		if err != nil {
			return nil, err
		}
		if ok {
			return names, nil
		}
	}
}

// validName accepts names made of letters and single spaces that nobody
// else at the table is using.
func validName(name string, taken []string) (bool, string) {
	if name == "" {
		return false, "Invalid name, please try another.\n"
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' {
			return false, "Invalid name, please try another.\n"
		}
	}
	for _, t := range taken {
		if strings.EqualFold(t, name) {
			return false, fmt.Sprintf("%s is already seated.\n", t)
		}
	}
	return true, ""
}
