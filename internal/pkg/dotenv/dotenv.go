package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load читает переменные из файла path, не перезаписывая уже заданные в окружении.
// Возвращает false, если файла нет.
func Load(path string) (bool, error) {
	err := godotenv.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	return true, nil
}

// ApplyFlags разбирает аргументы командной строки. -port переопределяет PORT.
func ApplyFlags(name string, args []string) error {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	var portFlag string
	flags.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
