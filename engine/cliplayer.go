package engine

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/showell/lynrummy/protocol"
)

// cliCommand describes one word of the terminal grammar
type cliCommand struct {
	cmd      protocol.Cmd
	withCard bool
	numbers  int
}

var cliCommands = map[string]cliCommand{
	"board": {cmd: protocol.Show},
	"score": {cmd: protocol.TurnScore},
	"split": {cmd: protocol.Split, numbers: 3},
	"merge": {cmd: protocol.Merge, numbers: 4},
	"move":  {cmd: protocol.Move, numbers: 3},
	"play":  {cmd: protocol.PlayOnStack, withCard: true, numbers: 2},
	"drop":  {cmd: protocol.PlayOnShelf, withCard: true, numbers: 1},
	"done":  {cmd: protocol.CompleteTurn},
	"undo":  {cmd: protocol.Undo},
}

// ParseCommand turns a line typed at the prompt into a message from the
// given player, e.g. "play 5H 1 0" or "merge 0 1 0 0".
func ParseCommand(playerID, line string) (protocol.InboundMessage, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return protocol.InboundMessage{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	c, ok := cliCommands[fields[0]]
	if !ok {
		return protocol.InboundMessage{}, fmt.Errorf("%w: %q (type help)", ErrUnknownCommand, fields[0])
	}

	msg := protocol.InboundMessage{PlayerID: playerID, Command: c.cmd, Decision: []int{}}
	args := fields[1:]
	if c.withCard {
		if len(args) == 0 {
			return protocol.InboundMessage{}, fmt.Errorf("%w: %s needs a card", ErrBadDecision, fields[0])
		}
		msg.Card = strings.ToUpper(args[0])
		args = args[1:]
	}

	if len(args) != c.numbers {
		return protocol.InboundMessage{}, fmt.Errorf("%w: %s takes %d numbers, got %d", ErrBadDecision, fields[0], c.numbers, len(args))
	}
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return protocol.InboundMessage{}, fmt.Errorf("%w: %q is not a number", ErrBadDecision, arg)
		}
		msg.Decision = append(msg.Decision, n)
	}

	return msg, nil
}

// RunCLI plays a hot-seat game at the terminal: whoever's turn it is types
// at the prompt. It returns at the end of input or when someone types quit.
func RunCLI(ge *GameEngine, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	showTurn(ge, out)

	for {
		current := ge.Game().CurrentPlayer()
		SendText(out, promptText, current.Name)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit":
			SendText(out, "Bye!\n")
			return nil
		case "help":
			SendText(out, helpText)
			continue
		}

		msg, err := ParseCommand(current.ID, line)
		if err != nil {
			SendText(out, "%s\n", err)
			continue
		}

		reply, err := ge.Receive(msg)
		if err != nil {
			SendText(out, "%s\n", err)
			continue
		}
		showReply(ge, out, reply)
	}

	SendText(out, "\n")
	return scanner.Err()
}

func showTurn(ge *GameEngine, out io.Writer) {
	g := ge.Game()
	SendText(out, turnBannerText, g.CurrentPlayer().Name)
	SendText(out, "%s", BoardText(g.Board()))
	SendText(out, "%s", HandText(g.CurrentPlayer().Hand))
}

func showReply(ge *GameEngine, out io.Writer, reply protocol.OutboundMessage) {
	if reply.Message != "" {
		SendText(out, "%s\n", reply.Message)
	}

	switch reply.Outcome {
	case protocol.TurnEnded:
		SendText(out, "Total score: %d. Cards left in the deck: %d\n", reply.TotalScore, reply.DeckCount)
		showTurn(ge, out)
	case protocol.Changed:
		SendText(out, "%s\n", strings.Join(reply.Board, "\n"))
		SendText(out, "Your hand: %s\n", strings.Join(reply.Hand, " "))
	default:
		if reply.Command == protocol.Show {
			showTurn(ge, out)
		}
	}
}
