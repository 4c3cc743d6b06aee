package sdp

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSessionMediaSections(t *testing.T) {
	sess, err := ParseSession(chromeOffer)
	if err != nil {
		t.Fatalf("ParseSession: %v", err)
	}

	sections := sess.MediaSections()
	if len(sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(sections))
	}

	audio := sections[0]
	if audio.Type != "audio" || audio.Mid != "0" || audio.Direction != "sendrecv" {
		t.Errorf("audio = %+v", audio)
	}
	if len(audio.Payloads) != 2 {
		t.Fatalf("audio payloads = %d, want 2", len(audio.Payloads))
	}
	// Sorted by payload type.
	if audio.Payloads[0].Type != 63 || audio.Payloads[1].Type != 111 {
		t.Errorf("payload order = %d, %d", audio.Payloads[0].Type, audio.Payloads[1].Type)
	}
	opus := audio.Payloads[1]
	if opus.Codec != "opus" || opus.ClockRate != 48000 || opus.Channels != 2 {
		t.Errorf("opus = %+v", opus)
	}
	if opus.Fmtp != "minptime=10;useinbandfec=1" {
		t.Errorf("opus fmtp = %q", opus.Fmtp)
	}
	if strings.Join(opus.Feedback, ",") != "transport-cc" {
		t.Errorf("opus feedback = %v", opus.Feedback)
	}
	if audio.ICE.Ufrag != "abcd" || audio.ICE.Options != "trickle" {
		t.Errorf("audio ice = %+v", audio.ICE)
	}
	if audio.DTLS.Setup != "actpass" || !strings.HasPrefix(audio.DTLS.Fingerprint, "sha-256 ") {
		t.Errorf("audio dtls = %+v", audio.DTLS)
	}
	if len(audio.SSRCs) != 1 || audio.SSRCs[0].Attributes["cname"] != "user@host" ||
		audio.SSRCs[0].Attributes["msid"] != "stream track-a" {
		t.Errorf("audio ssrcs = %+v", audio.SSRCs)
	}
	if len(audio.Extmaps) != 1 || audio.Extmaps[0].URI != "urn:ietf:params:rtp-hdrext:ssrc-audio-level" {
		t.Errorf("audio extmaps = %+v", audio.Extmaps)
	}

	video := sections[1]
	if video.Direction != "recvonly" {
		t.Errorf("video direction = %q", video.Direction)
	}
	vp8 := video.Payloads[0]
	if vp8.Codec != "VP8" || strings.Join(vp8.Feedback, ",") != "nack,nack:pli,ccm:fir" {
		t.Errorf("vp8 = %+v", vp8)
	}
	if len(video.Groups) != 1 || video.Groups[0].Semantics != "FID" {
		t.Errorf("video ssrc groups = %+v", video.Groups)
	}
}

func TestSessionCodec(t *testing.T) {
	sess, err := ParseSession(chromeOffer)
	if err != nil {
		t.Fatalf("ParseSession: %v", err)
	}
	codec, ok := sess.Codec(111)
	if !ok {
		t.Fatal("codec 111 not found")
	}
	if codec.Name != "opus" || codec.ClockRate != 48000 {
		t.Errorf("codec = %+v", codec)
	}
	if _, ok := sess.Codec(5); ok {
		t.Error("codec 5 should not resolve")
	}
}

func TestSessionGroups(t *testing.T) {
	sess, err := ParseSession(chromeOffer)
	if err != nil {
		t.Fatalf("ParseSession: %v", err)
	}
	groups := sess.BundleGroups()
	if len(groups) != 1 || groups[0] != "BUNDLE 0 1" {
		t.Errorf("groups = %v", groups)
	}
}

func TestNilSessionAccessors(t *testing.T) {
	var sess *Session
	if sess.MediaSections() != nil {
		t.Error("nil session returned media sections")
	}
	if _, ok := sess.Codec(111); ok {
		t.Error("nil session resolved a codec")
	}
	if sess.ICE() != (ICE{}) || sess.DTLS() != (DTLS{}) {
		t.Error("nil session returned ICE/DTLS values")
	}
}

func TestParseSessionErrors(t *testing.T) {
	if _, err := ParseSession(""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty: err = %v, want ErrEmptyInput", err)
	}
	if _, err := ParseSession("m=audio 9 RTP/AVP 0\n"); err == nil {
		t.Error("session without v= line should fail")
	}
}
