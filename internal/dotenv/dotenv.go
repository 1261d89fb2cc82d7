package dotenv

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"

	"github.com/enerflo/infisical-run/internal/env"
	kerrors "github.com/enerflo/infisical-run/internal/errors"
)

// DefaultFile is the default dotenv file name, resolved relative to the
// working directory.
const DefaultFile = ".env"

// Load parses the dotenv file at path into a variable set. A missing
// file is an error: this is the contract for files the user explicitly
// asked for.
func Load(path string) (env.Set, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", kerrors.ErrDotenvFileNotFound, path)
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return env.Set(vars), nil
}

// LoadOptional parses the dotenv file at path, treating a missing file
// as a soft no-op. Returns the loaded set and whether the file existed.
// This is the contract for the default .env file.
func LoadOptional(path string) (env.Set, bool, error) {
	vars, err := Load(path)
	if err != nil {
		if errors.Is(err, kerrors.ErrDotenvFileNotFound) {
			return env.Set{}, false, nil
		}
		return nil, false, err
	}
	return vars, true, nil
}
