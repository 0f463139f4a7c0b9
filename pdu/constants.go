package pdu

import "fmt"

// MaxCommandLength is the SMPP-recommended default upper bound on a
// command's total wire length (including its own 4-byte length prefix).
// The framing codec in the root package lets callers override or disable
// this; the constant only documents the default.
const MaxCommandLength = 8192

// CommandStatus is the four-byte command_status field. Known values are
// named constants; anything else is preserved as a plain uint32 rather
// than rejected — command_status is inherently open because vendors and
// newer spec revisions add codes.
type CommandStatus uint32

// SMPP command_status set (ESME_R* in the spec, renamed without the
// redundant prefix since the Go type already carries it).
const (
	StatusOK                  CommandStatus = 0x00000000 // ESME_ROK
	StatusInvalidMsgLen       CommandStatus = 0x00000001
	StatusInvalidCmdLen       CommandStatus = 0x00000002
	StatusInvalidCmdID        CommandStatus = 0x00000003
	StatusInvalidBindStatus   CommandStatus = 0x00000004
	StatusAlreadyBound        CommandStatus = 0x00000005
	StatusInvalidPriorityFlag CommandStatus = 0x00000006
	StatusInvalidRegDlvFlag   CommandStatus = 0x00000007
	StatusSystemError         CommandStatus = 0x00000008
	StatusInvalidSrcAddr      CommandStatus = 0x0000000A
	StatusInvalidDstAddr      CommandStatus = 0x0000000B
	StatusInvalidMsgID        CommandStatus = 0x0000000C
	StatusBindFailed          CommandStatus = 0x0000000D
	StatusInvalidPassword     CommandStatus = 0x0000000E
	StatusInvalidSystemID     CommandStatus = 0x0000000F
	StatusCancelFailed        CommandStatus = 0x00000011
	StatusReplaceFailed       CommandStatus = 0x00000013
	StatusMessageQueueFull    CommandStatus = 0x00000014
	StatusInvalidServiceType  CommandStatus = 0x00000015
	StatusInvalidNumDests     CommandStatus = 0x00000033
	StatusInvalidDLName       CommandStatus = 0x00000034
	StatusInvalidDestFlag     CommandStatus = 0x00000040
	StatusInvalidSubmitRepl   CommandStatus = 0x00000042
	StatusInvalidEsmClass     CommandStatus = 0x00000043
	StatusCannotSubmitDL      CommandStatus = 0x00000044
	StatusSubmitFailed        CommandStatus = 0x00000045
	StatusInvalidSrcTON       CommandStatus = 0x00000048
	StatusInvalidSrcNPI       CommandStatus = 0x00000049
	StatusInvalidDstTON       CommandStatus = 0x00000050
	StatusInvalidDstNPI       CommandStatus = 0x00000051
	StatusInvalidSystemType   CommandStatus = 0x00000053
	StatusInvalidReplaceFlag  CommandStatus = 0x00000054
	StatusInvalidNumMsgs      CommandStatus = 0x00000055
	StatusThrottled           CommandStatus = 0x00000058
	StatusInvalidSchedule     CommandStatus = 0x00000061
	StatusInvalidExpiry       CommandStatus = 0x00000062
	StatusInvalidDftMsgID     CommandStatus = 0x00000063
	StatusTempAppError        CommandStatus = 0x00000064
	StatusPermAppError        CommandStatus = 0x00000065
	StatusRejectedAppError    CommandStatus = 0x00000066
	StatusQueryFailed         CommandStatus = 0x00000067
	StatusInvalidOptParStream CommandStatus = 0x000000C0
	StatusOptParNotAllowed    CommandStatus = 0x000000C1
	StatusInvalidParamLen     CommandStatus = 0x000000C2
	StatusMissingOptParam     CommandStatus = 0x000000C3
	StatusInvalidOptParamVal  CommandStatus = 0x000000C4
	StatusDeliveryFailure     CommandStatus = 0x000000FE
	StatusUnknownError        CommandStatus = 0x000000FF
)

var commandStatusNames = map[CommandStatus]string{
	StatusOK:                  "ESME_ROK",
	StatusInvalidMsgLen:       "ESME_RINVMSGLEN",
	StatusInvalidCmdLen:       "ESME_RINVCMDLEN",
	StatusInvalidCmdID:        "ESME_RINVCMDID",
	StatusInvalidBindStatus:   "ESME_RINVBNDSTS",
	StatusAlreadyBound:        "ESME_RALYBND",
	StatusInvalidPriorityFlag: "ESME_RINVPRTFLG",
	StatusInvalidRegDlvFlag:   "ESME_RINVREGDLVFLG",
	StatusSystemError:         "ESME_RSYSERR",
	StatusInvalidSrcAddr:      "ESME_RINVSRCADR",
	StatusInvalidDstAddr:      "ESME_RINVDSTADR",
	StatusInvalidMsgID:        "ESME_RINVMSGID",
	StatusBindFailed:          "ESME_RBINDFAIL",
	StatusInvalidPassword:     "ESME_RINVPASWD",
	StatusInvalidSystemID:     "ESME_RINVSYSID",
	StatusCancelFailed:        "ESME_RCANCELFAIL",
	StatusReplaceFailed:       "ESME_RREPLACEFAIL",
	StatusMessageQueueFull:    "ESME_RMSGQFUL",
	StatusInvalidServiceType:  "ESME_RINVSERTYP",
	StatusInvalidNumDests:     "ESME_RINVNUMDESTS",
	StatusInvalidDLName:       "ESME_RINVDLNAME",
	StatusInvalidDestFlag:     "ESME_RINVDESTFLAG",
	StatusInvalidSubmitRepl:   "ESME_RINVSUBREP",
	StatusInvalidEsmClass:     "ESME_RINVESMCLASS",
	StatusCannotSubmitDL:      "ESME_RCNTSUBDL",
	StatusSubmitFailed:        "ESME_RSUBMITFAIL",
	StatusInvalidSrcTON:       "ESME_RINVSRCTON",
	StatusInvalidSrcNPI:       "ESME_RINVSRCNPI",
	StatusInvalidDstTON:       "ESME_RINVDSTTON",
	StatusInvalidDstNPI:       "ESME_RINVDSTNPI",
	StatusInvalidSystemType:   "ESME_RINVSYSTYP",
	StatusInvalidReplaceFlag:  "ESME_RINVREPFLAG",
	StatusInvalidNumMsgs:      "ESME_RINVNUMMSGS",
	StatusThrottled:           "ESME_RTHROTTLED",
	StatusInvalidSchedule:     "ESME_RINVSCHED",
	StatusInvalidExpiry:       "ESME_RINVEXPIRY",
	StatusInvalidDftMsgID:     "ESME_RINVDFTMSGID",
	StatusTempAppError:        "ESME_RX_T_APPN",
	StatusPermAppError:        "ESME_RX_P_APPN",
	StatusRejectedAppError:    "ESME_RX_R_APPN",
	StatusQueryFailed:         "ESME_RQUERYFAIL",
	StatusInvalidOptParStream: "ESME_RINVOPTPARSTREAM",
	StatusOptParNotAllowed:    "ESME_ROPTPARNOTALLWD",
	StatusInvalidParamLen:     "ESME_RINVPARLEN",
	StatusMissingOptParam:     "ESME_RMISSINGOPTPARAM",
	StatusInvalidOptParamVal:  "ESME_RINVOPTPARAMVAL",
	StatusDeliveryFailure:     "ESME_RDELIVERYFAILURE",
	StatusUnknownError:        "ESME_RUNKNOWNERR",
}

// String renders the known ESME_R* mnemonic, or Other(0x...) for an
// unrecognized status.
func (s CommandStatus) String() string {
	if name, ok := commandStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Other(0x%08X)", uint32(s))
}

// OK reports whether the status is ESME_ROK.
func (s CommandStatus) OK() bool {
	return s == StatusOK
}

// respBit is the single bit (bit 31) distinguishing a response
// command_id from its matching request.
const respBit CommandID = 0x80000000

// CommandID is the four-byte command_id field identifying a PDU's wire
// type. Unknown values are preserved verbatim rather than rejected: a
// newer SMPP revision or vendor extension should still frame correctly
// even if this codec can't interpret its body.
type CommandID uint32

// SMPP v5.0 command set.
const (
	GenericNackID           CommandID = 0x80000000
	BindReceiverID          CommandID = 0x00000001
	BindReceiverRespID      CommandID = 0x80000001
	BindTransmitterID       CommandID = 0x00000002
	BindTransmitterRespID   CommandID = 0x80000002
	QuerySmID               CommandID = 0x00000003
	QuerySmRespID           CommandID = 0x80000003
	SubmitSmID              CommandID = 0x00000004
	SubmitSmRespID          CommandID = 0x80000004
	DeliverSmID             CommandID = 0x00000005
	DeliverSmRespID         CommandID = 0x80000005
	UnbindID                CommandID = 0x00000006
	UnbindRespID            CommandID = 0x80000006
	ReplaceSmID             CommandID = 0x00000007
	ReplaceSmRespID         CommandID = 0x80000007
	CancelSmID              CommandID = 0x00000008
	CancelSmRespID          CommandID = 0x80000008
	BindTransceiverID       CommandID = 0x00000009
	BindTransceiverRespID   CommandID = 0x80000009
	OutbindID               CommandID = 0x0000000B
	EnquireLinkID           CommandID = 0x00000015
	EnquireLinkRespID       CommandID = 0x80000015
	SubmitMultiID           CommandID = 0x00000021
	SubmitMultiRespID       CommandID = 0x80000021
	AlertNotificationID     CommandID = 0x00000102
	DataSmID                CommandID = 0x00000103
	DataSmRespID            CommandID = 0x80000103
	BroadcastSmID           CommandID = 0x00000111
	BroadcastSmRespID       CommandID = 0x80000111
	QueryBroadcastSmID      CommandID = 0x00000112
	QueryBroadcastSmRespID  CommandID = 0x80000112
	CancelBroadcastSmID     CommandID = 0x00000113
	CancelBroadcastSmRespID CommandID = 0x80000113
)

var commandIDNames = map[CommandID]string{
	GenericNackID:           "generic_nack",
	BindReceiverID:          "bind_receiver",
	BindReceiverRespID:      "bind_receiver_resp",
	BindTransmitterID:       "bind_transmitter",
	BindTransmitterRespID:   "bind_transmitter_resp",
	QuerySmID:               "query_sm",
	QuerySmRespID:           "query_sm_resp",
	SubmitSmID:              "submit_sm",
	SubmitSmRespID:          "submit_sm_resp",
	DeliverSmID:             "deliver_sm",
	DeliverSmRespID:         "deliver_sm_resp",
	UnbindID:                "unbind",
	UnbindRespID:            "unbind_resp",
	ReplaceSmID:             "replace_sm",
	ReplaceSmRespID:         "replace_sm_resp",
	CancelSmID:              "cancel_sm",
	CancelSmRespID:          "cancel_sm_resp",
	BindTransceiverID:       "bind_transceiver",
	BindTransceiverRespID:   "bind_transceiver_resp",
	OutbindID:               "outbind",
	EnquireLinkID:           "enquire_link",
	EnquireLinkRespID:       "enquire_link_resp",
	SubmitMultiID:           "submit_multi",
	SubmitMultiRespID:       "submit_multi_resp",
	AlertNotificationID:     "alert_notification",
	DataSmID:                "data_sm",
	DataSmRespID:            "data_sm_resp",
	BroadcastSmID:           "broadcast_sm",
	BroadcastSmRespID:       "broadcast_sm_resp",
	QueryBroadcastSmID:      "query_broadcast_sm",
	QueryBroadcastSmRespID:  "query_broadcast_sm_resp",
	CancelBroadcastSmID:     "cancel_broadcast_sm",
	CancelBroadcastSmRespID: "cancel_broadcast_sm_resp",
}

// String renders the known mnemonic, or Other(0x...) for an unrecognized
// command_id (for example a vendor extension command).
func (id CommandID) String() string {
	if name, ok := commandIDNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Other(0x%08X)", uint32(id))
}

// IsRequest reports whether bit 31 is clear, i.e. this is a request
// command rather than a response.
func (id CommandID) IsRequest() bool {
	return id&respBit == 0
}

// IsResponse reports whether bit 31 is set.
func (id CommandID) IsResponse() bool {
	return id&respBit != 0
}

// MatchingRequest clears bit 31, turning a response id into its paired
// request id (e.g. SubmitSmRespID -> SubmitSmID).
func (id CommandID) MatchingRequest() CommandID {
	return id &^ respBit
}

// MatchingResponse sets bit 31, turning a request id into its paired
// response id (e.g. SubmitSmID -> SubmitSmRespID).
func (id CommandID) MatchingResponse() CommandID {
	return id | respBit
}

// Known reports whether id is one of the command set named above.
func (id CommandID) Known() bool {
	_, ok := commandIDNames[id]
	return ok
}
