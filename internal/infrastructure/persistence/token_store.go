package persistence

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/google/uuid"

	"landshop/internal/domain"
	"landshop/pkg/errcodes"
)

// TokenStore persists the remote access credential. It is written once on
// first run and reused on every start after that.
type TokenStore struct {
	path string
}

func NewTokenStore(path string) TokenStore {
	return TokenStore{path: path}
}

func (s TokenStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

func (s TokenStore) Load() (uuid.UUID, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return uuid.Nil, domain.WrapError(err, errcodes.PersistenceError, "failed to read token file")
	}

	token, err := uuid.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return uuid.Nil, domain.WrapError(err, errcodes.InvalidAccessToken, "stored token is not a valid uuid")
	}

	return token, nil
}

func (s TokenStore) Save(token uuid.UUID) error {
	if err := os.WriteFile(s.path, []byte(token.String()), recordFileMode); err != nil {
		return domain.WrapError(err, errcodes.PersistenceError, "failed to write token file")
	}

	return nil
}

// Obtain returns the stored credential, or runs the first-run prompt on in,
// re-asking until a valid uuid is pasted, then persists it. Failing to end
// up with a valid credential is fatal for startup.
func (s TokenStore) Obtain(in io.Reader, out io.Writer) (uuid.UUID, error) {
	if s.Exists() {
		return s.Load()
	}

	fmt.Fprintln(out, "Hi! Looks like this is the first run of the agent.")
	fmt.Fprintln(out, "In game, run: /token Payment LandNotify")
	fmt.Fprint(out, "Then paste the token here and press Enter: ")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		token, err := uuid.Parse(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprint(out, "That token is not valid, please paste it again and press Enter: ")
			continue
		}

		if err := s.Save(token); err != nil {
			return uuid.Nil, err
		}

		return token, nil
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, fs.ErrClosed) {
		return uuid.Nil, domain.WrapError(err, errcodes.InvalidAccessToken, "failed to read token from input")
	}

	return uuid.Nil, domain.NewError(errcodes.InvalidAccessToken, "no valid access token obtained")
}
