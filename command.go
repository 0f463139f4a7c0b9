// Package smpp implements the SMPP v5.0 wire protocol: the Command
// envelope (command_status, sequence_number, and a pdu.PDU body) and the
// length-prefixed stream framing layered on top of the pdu package's
// codec. It does not implement a session state machine, a client, or a
// connection pool — those are external collaborators that consume
// Command, CommandID, and CommandStatus.
package smpp

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/smppcodec/smpp/pdu"
)

// Command is one SMPP protocol data unit: the header's command_status
// and sequence_number plus the decoded PDU body. The command_id is never
// stored independently — it is always read from PDU.CommandID(), so a
// Command can't disagree with its own body about what kind of command it
// is.
type Command struct {
	Status         pdu.CommandStatus
	SequenceNumber uint32
	PDU            pdu.PDU
}

// NewCommand builds a Command from its three fields directly.
func NewCommand(status pdu.CommandStatus, seq uint32, p pdu.PDU) Command {
	return Command{Status: status, SequenceNumber: seq, PDU: p}
}

// CommandBuilder accumulates a Command's fields via chained calls,
// terminated by Build.
type CommandBuilder struct {
	cmd Command
}

// NewCommandBuilder starts a new CommandBuilder.
func NewCommandBuilder() *CommandBuilder {
	return &CommandBuilder{}
}

// Status sets the command_status.
func (b *CommandBuilder) Status(status pdu.CommandStatus) *CommandBuilder {
	b.cmd.Status = status
	return b
}

// SequenceNumber sets the sequence_number.
func (b *CommandBuilder) SequenceNumber(seq uint32) *CommandBuilder {
	b.cmd.SequenceNumber = seq
	return b
}

// PDU sets the command body.
func (b *CommandBuilder) PDU(p pdu.PDU) *CommandBuilder {
	b.cmd.PDU = p
	return b
}

// Build returns the accumulated Command.
func (b *CommandBuilder) Build() Command {
	return b.cmd
}

// CommandID returns the command_id of the underlying PDU, or
// pdu.CommandID(0) if no PDU has been set.
func (c Command) CommandID() pdu.CommandID {
	if c.PDU == nil {
		return pdu.CommandID(0)
	}
	return c.PDU.CommandID()
}

// Length returns the command's total encoded length, including the
// 16-byte header.
func (c Command) Length() int {
	n := 0
	if c.PDU != nil {
		n = c.PDU.Length()
	}
	return 16 + n
}

// Encode writes the full command (4-byte command_length, 16-byte header
// total, and body) into dst, which must be at least Length() bytes, and
// returns the number of bytes written.
func (c Command) Encode(dst []byte) (int, error) {
	total := c.Length()
	if len(dst) < total {
		return 0, errors.Errorf("smpp: buffer too small for command: need %d, have %d", total, len(dst))
	}
	binary.BigEndian.PutUint32(dst[0:4], uint32(total))
	binary.BigEndian.PutUint32(dst[4:8], uint32(c.CommandID()))
	binary.BigEndian.PutUint32(dst[8:12], uint32(c.Status))
	binary.BigEndian.PutUint32(dst[12:16], c.SequenceNumber)
	if c.PDU == nil {
		return 16, nil
	}
	n, err := c.PDU.Encode(dst[16:total])
	if err != nil {
		return 16, errors.WithMessage(err, "smpp: encoding command body")
	}
	return 16 + n, nil
}

// decodeCommand reads command_id, command_status, sequence_number, and
// the PDU body from src — everything a frame carries after its 4-byte
// command_length prefix.
func decodeCommand(src []byte) (Command, error) {
	if len(src) < 12 {
		return Command{}, pdu.WrapField("command", pdu.NewDecodeError("command", pdu.KindUnexpectedEOF))
	}
	id := pdu.CommandID(binary.BigEndian.Uint32(src[0:4]))
	status := pdu.CommandStatus(binary.BigEndian.Uint32(src[4:8]))
	seq := binary.BigEndian.Uint32(src[8:12])
	body := pdu.NewPDU(id)
	if _, err := body.Decode(src[12:]); err != nil {
		return Command{}, pdu.WrapField("command.pdu", err)
	}
	return Command{Status: status, SequenceNumber: seq, PDU: body}, nil
}
