package irc

import (
	"bufio"
	"context"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"

	"irc-bridge/errors"
	"irc-bridge/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/irc.v4"
)

// fakeServer reads client lines from the server side of a pipe.
func fakeServer(server net.Conn) <-chan string {
	lines := make(chan string, 32)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(server)
		for scanner.Scan() {
			lines <- strings.TrimRight(scanner.Text(), "\r")
		}
	}()
	return lines
}

// waitMessage returns the params of the next client message with the given command.
// Lines are parsed so the trailing colon policy of the encoder does not matter.
func waitMessage(t *testing.T, lines <-chan string, command string) []string {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				t.Fatalf("connection closed before %s", command)
			}
			m, err := irc.ParseMessage(line)
			if err == nil && m.Command == command {
				return m.Params
			}
		case <-timeout:
			t.Fatalf("no %s message", command)
		}
	}
}

func TestConn_Serve_Registers_And_Decodes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockProtocolHandler(ctrl)
	client, server := net.Pipe()
	defer server.Close()
	lines := fakeServer(server)

	conn := NewConn(slog.Default(), client, "alice", Options{Username: "bridge", Realname: "IRC bridge"})

	signedOn := make(chan struct{})
	handler.EXPECT().OnSignedOn("alice").Do(func(string) { close(signedOn) })

	served := make(chan error, 1)
	go func() { served <- conn.Serve(context.Background(), handler) }()

	// Given the client registered with its nickname
	req.Equal([]string{"alice"}, waitMessage(t, lines, "NICK"))
	req.Equal("bridge", waitMessage(t, lines, "USER")[0])

	// When the server welcomes it
	_, err := server.Write([]byte(":irc.example.net 001 alice :Welcome\r\n"))
	req.NoError(err)
	select {
	case <-signedOn:
	case <-time.After(2 * time.Second):
		req.Fail("sign-on not decoded")
	}

	// Then commands go out as protocol lines
	req.NoError(conn.Privmsg("#go", "hello there"))
	req.Equal([]string{"#go", "hello there"}, waitMessage(t, lines, "PRIVMSG"))
	req.NoError(conn.Action("#go", "waves"))
	req.Equal([]string{"#go", "\x01ACTION waves\x01"}, waitMessage(t, lines, "PRIVMSG"))
	req.NoError(conn.Join("#secret", "hunter2"))
	req.Equal([]string{"#secret", "hunter2"}, waitMessage(t, lines, "JOIN"))
	req.NoError(conn.Names("#go"))
	req.Equal([]string{"#go"}, waitMessage(t, lines, "NAMES"))

	// And a lost link ends Serve with a connection error
	_ = server.Close()
	select {
	case err := <-served:
		req.ErrorIs(err, errors.ErrConnection)
	case <-time.After(2 * time.Second):
		req.Fail("Serve did not return")
	}
}

func TestConn_Write_Before_Serve(t *testing.T) {
	req := require.New(t)
	client, server := net.Pipe()
	defer server.Close()

	conn := NewConn(slog.Default(), client, "alice", Options{})

	req.ErrorIs(conn.Privmsg("#go", "hi"), errors.ErrSessionOffline)
	req.NoError(conn.Close())
	req.NoError(conn.Close())
}

func TestConn_Handler_Commands_Do_Not_Stall_Reading(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockProtocolHandler(ctrl)
	client, server := net.Pipe()
	defer server.Close()
	scanner := bufio.NewScanner(server)

	conn := NewConn(slog.Default(), client, "alice", Options{})

	// Given a handler asking for roster and topic on every join
	channels := []string{"#a", "#b", "#c"}
	handler.EXPECT().OnSignedOn("alice")
	handler.EXPECT().OnJoined(gomock.Any()).Do(func(channel string) {
		_ = conn.Names(channel)
		_ = conn.Topic(channel)
	}).Times(len(channels))
	greeted := make(chan struct{})
	handler.EXPECT().OnPrivmsg("bob!b@host", "#c", "hi").Do(func(string, string, string) { close(greeted) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = conn.Serve(ctx, handler) }()
	for scanner.Scan() {
		if m, err := irc.ParseMessage(scanner.Text()); err == nil && m.Command == "USER" {
			break
		}
	}

	// When the server pushes joins while not reading anything back
	go func() {
		_, _ = server.Write([]byte(":irc.example.net 001 alice :Welcome\r\n"))
		for _, channel := range channels {
			_, _ = server.Write([]byte(":alice!a@host JOIN " + channel + "\r\n"))
		}
		_, _ = server.Write([]byte(":bob!b@host PRIVMSG #c :hi\r\n"))
	}()

	// Then the read loop keeps going
	select {
	case <-greeted:
	case <-time.After(2 * time.Second):
		req.Fail("read loop stalled on handler commands")
	}

	// And the queued commands go out in order once the server reads again
	var sent []string
	for len(sent) < 2*len(channels) && scanner.Scan() {
		m, err := irc.ParseMessage(strings.TrimRight(scanner.Text(), "\r"))
		req.NoError(err)
		sent = append(sent, m.Command+" "+m.Params[0])
	}
	req.Equal([]string{"NAMES #a", "TOPIC #a", "NAMES #b", "TOPIC #b", "NAMES #c", "TOPIC #c"}, sent)
}

func TestConn_Write_After_Serve_Ended(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockProtocolHandler(ctrl)
	client, server := net.Pipe()
	lines := fakeServer(server)

	conn := NewConn(slog.Default(), client, "alice", Options{})
	served := make(chan error, 1)
	go func() { served <- conn.Serve(context.Background(), handler) }()
	waitMessage(t, lines, "USER")

	// Given the link went away
	_ = server.Close()
	select {
	case <-served:
	case <-time.After(2 * time.Second):
		req.Fail("Serve did not return")
	}

	// Then commands are refused instead of queued
	req.ErrorIs(conn.Privmsg("#go", "hello"), errors.ErrSessionDisconnected)
}
