package pdu

import (
	"time"

	"github.com/smppcodec/smpp/smpptime"
)

// QuerySm requests the current state of a previously submitted message.
type QuerySm struct {
	MessageID     string
	SourceAddrTon uint8
	SourceAddrNpi uint8
	SourceAddr    string
}

// CommandID implements PDU.
func (p *QuerySm) CommandID() CommandID { return QuerySmID }

// Length implements PDU.
func (p *QuerySm) Length() int {
	return COctetStringLength(p.MessageID) + 2 + COctetStringLength(p.SourceAddr)
}

// Encode implements PDU.
func (p *QuerySm) Encode(dst []byte) (int, error) {
	n := copy(dst, EncodeCOctetString(nil, p.MessageID))
	dst[n] = p.SourceAddrTon
	dst[n+1] = p.SourceAddrNpi
	n += 2
	n += copy(dst[n:], EncodeCOctetString(nil, p.SourceAddr))
	return n, nil
}

// Decode implements PDU.
func (p *QuerySm) Decode(src []byte) (int, error) {
	c := newCursor(src)
	id, err := c.COctetString("message_id", 1, 65)
	if err != nil {
		return c.Pos(), err
	}
	p.MessageID = id
	v, err := c.Uint8("source_addr_ton")
	if err != nil {
		return c.Pos(), err
	}
	p.SourceAddrTon = v
	if v, err = c.Uint8("source_addr_npi"); err != nil {
		return c.Pos(), err
	}
	p.SourceAddrNpi = v
	addr, err := c.COctetString("source_addr", 1, 21)
	if err != nil {
		return c.Pos(), err
	}
	p.SourceAddr = addr
	return c.Pos(), nil
}

// Response builds the matching query_sm_resp.
func (p *QuerySm) Response(finalDate time.Time, state, errCode uint8) *QuerySmResp {
	return &QuerySmResp{
		MessageID:    p.MessageID,
		FinalDate:    finalDate,
		MessageState: state,
		ErrorCode:    errCode,
	}
}

// QuerySmResp reports a message's final disposition.
type QuerySmResp struct {
	MessageID    string
	FinalDate    time.Time
	MessageState uint8
	ErrorCode    uint8
}

// CommandID implements PDU.
func (p *QuerySmResp) CommandID() CommandID { return QuerySmRespID }

// Length implements PDU.
func (p *QuerySmResp) Length() int {
	return COctetStringLength(p.MessageID) + finalDateLength(p.FinalDate) + 2
}

func finalDateLength(t time.Time) int {
	if t.IsZero() {
		return 1
	}
	return 17
}

func encodeSmppTime(t time.Time) []byte {
	if t.IsZero() {
		return []byte{0x00}
	}
	s, err := smpptime.Format(smpptime.Absolute, t)
	if err != nil {
		return []byte{0x00}
	}
	return append([]byte(s), 0x00)
}

// parseSmppTime decodes an already NUL-stripped COctetString payload into
// a time.Time, treating the empty string (immediate/not-set) as the zero
// value rather than an error.
func parseSmppTime(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := smpptime.Parse([]byte(raw))
	if err != nil {
		return time.Time{}, WrapField(field, err)
	}
	return t, nil
}

// Encode implements PDU.
func (p *QuerySmResp) Encode(dst []byte) (int, error) {
	n := copy(dst, EncodeCOctetString(nil, p.MessageID))
	n += copy(dst[n:], encodeSmppTime(p.FinalDate))
	dst[n] = p.MessageState
	dst[n+1] = p.ErrorCode
	n += 2
	return n, nil
}

// Decode implements PDU.
func (p *QuerySmResp) Decode(src []byte) (int, error) {
	c := newCursor(src)
	id, err := c.COctetString("message_id", 1, 65)
	if err != nil {
		return c.Pos(), err
	}
	p.MessageID = id
	raw, err := c.COctetString("final_date", 1, 17)
	if err != nil {
		return c.Pos(), err
	}
	t, terr := parseSmppTime("final_date", raw)
	if terr != nil {
		return c.Pos(), terr
	}
	p.FinalDate = t
	v, err := c.Uint8("message_state")
	if err != nil {
		return c.Pos(), err
	}
	p.MessageState = v
	if v, err = c.Uint8("error_code"); err != nil {
		return c.Pos(), err
	}
	p.ErrorCode = v
	return c.Pos(), nil
}
