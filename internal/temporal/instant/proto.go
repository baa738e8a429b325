package instant

import (
	"google.golang.org/protobuf/types/known/timestamppb"
)

// FromProto adapts a protobuf Timestamp to the resolver's Wire shape.
// A nil message is absent input and resolves to Invalid
func FromProto(ts *timestamppb.Timestamp) Input {
	if ts == nil {
		return nil
	}
	return Wire{Seconds: ts.GetSeconds(), Nanos: ts.GetNanos()}
}

// ToProto converts an Instant into a protobuf Timestamp for submission
// over the wire. Invalid yields nil so absent stays absent end to end
func ToProto(i Instant) *timestamppb.Timestamp {
	if !i.Valid() {
		return nil
	}
	ms := i.UnixMilli()
	sec := ms / 1000
	rem := ms % 1000
	if rem < 0 {
		sec--
		rem += 1000
	}
	return &timestamppb.Timestamp{Seconds: sec, Nanos: int32(rem) * 1_000_000}
}
