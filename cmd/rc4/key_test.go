package main

import (
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
)

func TestKeySelection(t *testing.T) {
	cases := []struct {
		name    string
		o       keyOptions
		want    []byte
		wantErr error
	}{
		{"literal", keyOptions{Key: "Key"}, []byte("Key"), nil},
		{"hex", keyOptions{KeyHex: "4b6579"}, []byte("Key"), nil},
		{"none", keyOptions{}, nil, errNoKey},
		{"two", keyOptions{Key: "Key", KeyHex: "4b6579"}, nil, errMultipleKeys},
		{"passphrase and prompt", keyOptions{Passphrase: "p", Prompt: true}, nil, errMultipleKeys},
		{"zero iterations", keyOptions{Passphrase: "p", KeyLen: 16}, nil, errBadDerive},
		{
			"passphrase",
			keyOptions{Passphrase: "hunter2", Salt: "salt", Iterations: 10, KeyLen: 5},
			pbkdf2.Key([]byte("hunter2"), []byte("salt"), 10, 5, sha256.New),
			nil,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.o.key()
			if c.wantErr != nil {
				require.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.want, got)
		})
	}
}

func TestKeyBadHex(t *testing.T) {
	_, err := keyOptions{KeyHex: "zz"}.key()
	require.ErrorContains(t, err, "key-hex")
	require.False(t, errorIsUsage(err))
}

func TestKeyPrompt(t *testing.T) {
	saved := readPassphrase
	defer func() { readPassphrase = saved }()

	readPassphrase = func() (string, error) { return "hunter2", nil }
	got, err := keyOptions{Prompt: true, Salt: "s", Iterations: 1, KeyLen: 8}.key()
	require.NoError(t, err)
	require.Equal(t, pbkdf2.Key([]byte("hunter2"), []byte("s"), 1, 8, sha256.New), got)

	noTTY := errors.New("no tty")
	readPassphrase = func() (string, error) { return "", noTTY }
	_, err = keyOptions{Prompt: true, Iterations: 1, KeyLen: 8}.key()
	require.ErrorIs(t, err, noTTY)
}

func TestParseKeyFlags(t *testing.T) {
	o := struct {
		Count      int `long:"count" short:"n" default:"16"`
		KeyOptions keyOptions
	}{}
	rest, usage := parse(&o, []string{"-k", "Wiki", "--drop=3", "-n", "4"})
	require.False(t, usage)
	require.Empty(t, rest)
	require.Equal(t, "Wiki", o.KeyOptions.Key)
	require.Equal(t, 3, o.KeyOptions.Drop)
	require.Equal(t, 4096, o.KeyOptions.Iterations)
	require.Equal(t, 16, o.KeyOptions.KeyLen)
	require.Equal(t, 4, o.Count)

	_, usage = parse(&o, []string{"--no-such-flag"})
	require.True(t, usage)
}
