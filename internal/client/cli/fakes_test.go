package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

type fakeAuth struct {
	regEmail string
	regPass  []byte
	regErr   error

	loginEmail string
	loginPass  []byte
	loginErr   error

	loggedOut bool
	meID      string
	meErr     error
	pingErr   error
}

func (f *fakeAuth) Register(_ context.Context, email string, pass []byte) error {
	f.regEmail, f.regPass = email, append([]byte(nil), pass...)
	return f.regErr
}

func (f *fakeAuth) Login(_ context.Context, email string, pass []byte) error {
	f.loginEmail, f.loginPass = email, append([]byte(nil), pass...)
	return f.loginErr
}

func (f *fakeAuth) Logout()                                 { f.loggedOut = true }
func (f *fakeAuth) WhoAmI(context.Context) (string, error) { return f.meID, f.meErr }
func (f *fakeAuth) Ping(context.Context) error             { return f.pingErr }

type fakeProducts struct {
	listOut []models.Product
	listErr error

	created   models.NewProduct
	createErr error
}

func (f *fakeProducts) List(context.Context) ([]models.Product, error) {
	return f.listOut, f.listErr
}

func (f *fakeProducts) Create(_ context.Context, p models.NewProduct) (*models.Product, error) {
	f.created = p
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.Product{ID: "p1", Name: p.Name, Price: 9.5, Description: p.Description}, nil
}

// stubInputs replaces the interactive prompts with canned answers.
func stubInputs(t *testing.T, lines []string, password []byte) {
	t.Helper()
	origST, origGP, origML := getSimpleText, getPassword, getMultiline
	t.Cleanup(func() {
		getSimpleText, getPassword, getMultiline = origST, origGP, origML
	})

	next := func() string {
		if len(lines) == 0 {
			return ""
		}
		l := lines[0]
		lines = lines[1:]
		return l
	}
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) { return next(), nil }
	getMultiline = func(*bufio.Reader, string, io.Writer) (string, error) { return next(), nil }
	getPassword = func(*bufio.Reader, io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
}

func newTestApp(auth *fakeAuth, products *fakeProducts, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		auth:     auth,
		products: products,
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      &out,
	}, &out
}
