package explain

import (
	"strings"

	"github.com/jwulff/sdpview/internal/sdp"
)

// subValues append paragraphs chosen by the parsed sub-value of a field. Each
// returns nil when the sub-value is absent or has no specific explanation.
var subValues = map[string]func(any) []string{
	"extmap":     explainExtmap,
	"rtpmap":     explainRTPMap,
	"rtcp-fb":    explainRTCPFeedback,
	"fmtp":       explainFmtp,
	"ssrc":       explainSSRC,
	"ssrc-group": explainSSRCGroup,
}

const sdesParagraph = `It defines an RTP header extension that can carry RTCP source description (SDES) items.`

var extensions = map[string][]string{
	"urn:ietf:params:rtp-hdrext:toffset": {
		`**urn:ietf:params:rtp-hdrext:toffset** is an RTP header extension that conveys a timestamp offset for media packets.`,
		`[RFC 5450 Transmission Time Offsets in RTP Streams](https://www.rfc-editor.org/rfc/rfc5450.html)`,
	},
	"http://www.webrtc.org/experiments/rtp-hdrext/abs-send-time": {
		`**http://www.webrtc.org/experiments/rtp-hdrext/abs-send-time** is the **Absolute Send Time extension**, used to stamp RTP packets with the time they departed the system that put them on the wire.`,
		`[libwebrtc](https://webrtc.googlesource.com/src/+/refs/heads/main/docs/native-code/rtp-hdrext/abs-send-time)`,
	},
	"urn:3gpp:video-orientation": {
		`**urn:3gpp:video-orientation** is an RTP header extension that conveys the orientation of video frames, typically from mobile devices.`,
		`[3GPP TS 26.114](https://www.etsi.org/deliver/etsi_ts/126100_126199/126114/16.07.00_60/ts_126114v160700p.pdf)`,
	},
	"http://www.ietf.org/id/draft-holmer-rmcat-transport-wide-cc-extensions-01": {
		`**http://www.ietf.org/id/draft-holmer-rmcat-transport-wide-cc-extensions-01** carries a transport-wide packet sequence number. An RTCP feedback message reports back the arrival times and sequence numbers of the packets received on a connection.`,
		`[draft-holmer-rmcat-transport-wide-cc-extensions-01](https://datatracker.ietf.org/doc/html/draft-holmer-rmcat-transport-wide-cc-extensions-01)`,
	},
	"http://www.webrtc.org/experiments/rtp-hdrext/playout-delay": {
		`**http://www.webrtc.org/experiments/rtp-hdrext/playout-delay** lets the RTP sender limit the playout delay at the receiver to a range. The minimum and maximum delay guide how far the receiver can smooth out rendering.`,
		`[libwebrtc](https://webrtc.googlesource.com/src/+/refs/heads/main/docs/native-code/rtp-hdrext/playout-delay)`,
	},
	"http://www.webrtc.org/experiments/rtp-hdrext/video-content-type": {
		`The Video Content Type extension communicates the content type of an RTP video stream from sender to receiver. A value of 0x00 means unspecified and 0x01 means **screenshare**.`,
		`[libwebrtc](https://webrtc.googlesource.com/src/+/refs/heads/main/docs/native-code/rtp-hdrext/video-content-type)`,
	},
	"http://www.webrtc.org/experiments/rtp-hdrext/video-timing": {
		`The Video Timing extension communicates per-frame timing information to the receiver of an RTP video stream.`,
		`[libwebrtc](https://webrtc.googlesource.com/src/+/refs/heads/main/docs/native-code/rtp-hdrext/video-timing)`,
	},
	"http://www.webrtc.org/experiments/rtp-hdrext/color-space": {
		`The color space extension communicates color space information, and optionally the metadata needed to render a high dynamic range (HDR) video stream.`,
		`[libwebrtc](https://webrtc.googlesource.com/src/+/refs/heads/main/docs/native-code/rtp-hdrext/color-space)`,
	},
	"urn:ietf:params:rtp-hdrext:sdes:mid": {
		sdesParagraph,
		`[RFC 8852](https://datatracker.ietf.org/doc/rfc8852/)`,
	},
	"urn:ietf:params:rtp-hdrext:sdes:rtp-stream-id": {
		sdesParagraph,
		`[RFC 8852](https://datatracker.ietf.org/doc/rfc8852/)`,
	},
	"urn:ietf:params:rtp-hdrext:sdes:repaired-rtp-stream-id": {
		sdesParagraph,
		`[RFC 8852](https://datatracker.ietf.org/doc/rfc8852/)`,
	},
	"urn:ietf:params:rtp-hdrext:ssrc-audio-level": {
		`**urn:ietf:params:rtp-hdrext:ssrc-audio-level** lets packets of an RTP audio stream indicate, in a header extension, the audio level of the sample they carry.`,
		`[RFC 6464](https://datatracker.ietf.org/doc/rfc6464/)`,
	},
}

func explainExtmap(v any) []string {
	x, ok := v.(*sdp.Extmap)
	if !ok || x == nil {
		return nil
	}
	return extensions[x.URI]
}

// codecs is keyed by the lower-cased encoding name.
var codecs = map[string][]string{
	"vp8": {
		`**VP8** is one of the mandatory video codecs of a fully WebRTC-compliant browser. [RFC 7741](https://datatracker.ietf.org/doc/html/rfc7741) describes the RTP payload format for VP8 video.`,
	},
	"vp9": {
		`The **VP9** video codec was developed by Google as the successor to VP8. Besides better compression it is designed to allow spatially-scalable video encoding.`,
		`[draft-ietf-payload-vp9-16](https://datatracker.ietf.org/doc/draft-ietf-payload-vp9/16/) describes the RTP payload for video streams encoded with VP9.`,
	},
	"h264": {
		`Support for AVC's Constrained Baseline (CB) profile is required in all fully-compliant WebRTC implementations.`,
		`[RFC 6184](https://datatracker.ietf.org/doc/html/rfc6184) describes an RTP payload format for the ITU-T Recommendation H.264 video codec and the technically identical ISO/IEC 14496-10 codec.`,
	},
	"av1": {
		`[RTP Payload Format For AV1](https://aomediacodec.github.io/av1-rtp-spec/) describes an RTP payload format for the AV1 video codec.`,
	},
	"rtx": {
		`**RTX** (RTP retransmission) is a packet loss recovery technique for real-time applications with relaxed delay bounds. [RFC 4588](https://datatracker.ietf.org/doc/html/rfc4588) describes the payload format for retransmissions.`,
	},
	"red": {
		`**RED** stands for REDundant coding, an RTP payload format for encoding redundant audio or video data.`,
		`[RFC 2198](https://datatracker.ietf.org/doc/html/rfc2198)`,
	},
	"ulpfec": {
		`**ULPFEC** stands for Uneven Level Protection Forward Error Correction. WebRTC uses it to recover from audio and video packet loss.`,
		`[RFC 5109](https://datatracker.ietf.org/doc/html/rfc5109)`,
	},
	"flexfec-03": {
		`**FlexFEC** is a Forward Error Correction (FEC) scheme used in WebRTC to make video streams more reliable.`,
		`[RFC 8627](https://datatracker.ietf.org/doc/html/rfc8627)`,
	},
	"opus": {
		`The **Opus** format, defined by [RFC 6716](https://datatracker.ietf.org/doc/html/rfc6716), is the primary audio format in WebRTC. Its RTP payload format is in [RFC 7587](https://datatracker.ietf.org/doc/html/rfc7587).`,
	},
}

func explainRTPMap(v any) []string {
	m, ok := v.(*sdp.RTPMap)
	if !ok || m == nil {
		return nil
	}
	return codecs[strings.ToLower(m.Codec)]
}

// feedback describes one rtcp-fb type. params is keyed by the feedback
// parameter; bare is appended when the parameter is empty.
type feedback struct {
	base   string
	bare   string
	params map[string]string
}

var feedbackTypes = map[string]feedback{
	"nack": {
		base: `**nack** indicates that negative acknowledgements are supported.`,
		bare: `The feedback type nack **without parameters** indicates use of the Generic NACK feedback format.`,
		params: map[string]string{
			"pli":  `**pli** indicates the use of Picture Loss Indication feedback.`,
			"sli":  `**sli** indicates the use of Slice Loss Indication feedback.`,
			"rpsi": `**rpsi** indicates the use of Reference Picture Selection Indication feedback.`,
		},
	},
	"ack": {
		base: `**ack** indicates that positive acknowledgements are supported.`,
	},
	"goog-remb": {
		base: `**goog-remb** notifies a sender of several media streams in one RTP session of the total estimated bit rate available on the path to the receiver. [draft-alvestrand-rmcat-remb-03](https://datatracker.ietf.org/doc/html/draft-alvestrand-rmcat-remb-03)`,
	},
	"transport-cc": {
		base: `**transport-cc** is a transport-wide RTCP feedback message carrying an arrival timestamp and a packet identifier for each packet received. [draft-holmer-rmcat-transport-wide-cc-extensions-01](https://datatracker.ietf.org/doc/html/draft-holmer-rmcat-transport-wide-cc-extensions-01#section-3)`,
	},
	"ccm": {
		base: `**ccm** is the Codec Control Message defined in [RFC 5104](https://www.rfc-editor.org/rfc/rfc5104.html).`,
		params: map[string]string{
			"fir": `**fir** indicates support of the Full Intra Request (FIR).`,
		},
	},
}

func explainRTCPFeedback(v any) []string {
	fb, ok := v.(*sdp.RTCPFeedback)
	if !ok || fb == nil {
		return nil
	}
	t, ok := feedbackTypes[fb.Type]
	if !ok {
		return nil
	}
	out := []string{t.base}
	switch p, known := t.params[fb.Parameter]; {
	case known:
		out = append(out, p)
	case fb.Parameter == "" && t.bare != "":
		out = append(out, t.bare)
	}
	return out
}

// keyed is one entry of an additive dispatch: the paragraph is emitted when
// the key is present.
type keyed struct {
	key  string
	text string
}

var fmtpParams = []keyed{
	{"apt", `**apt** associates this retransmission payload with its primary codec. Each primary codec that uses RTP retransmission gets an "a=rtpmap" line naming "rtx" at the primary's clock rate and an "a=fmtp" line referencing the primary payload type.`},
	{"profile-id", "The value of **profile-id** is an integer indicating the default VP9 coding profile.\n" +
		"| Profile | Color Depth | Chroma Subsampling |\n" +
		"| 0 | 8 bit | 4:2:0 |\n" +
		"| 1 | 8 bit | 4:2:2, 4:4:4 |\n" +
		"| 2 | 10 or 12 bit | 4:2:0 |\n" +
		"| 3 | 10 or 12 bit | 4:2:2, 4:4:4 |"},
	{"level-asymmetry-allowed", `**level-asymmetry-allowed** MAY be used in SDP Offer/Answer to indicate whether sending media encoded at a different level in each direction is allowed. [RFC 6184](https://datatracker.ietf.org/doc/html/rfc6184#section-8.1)`},
	{"packetization-mode", `When **packetization-mode** is 0 or absent the single NAL mode MUST be used. A value of 1 selects the non-interleaved mode and 2 the interleaved mode. [RFC 6184](https://datatracker.ietf.org/doc/html/rfc6184#section-8.1)`},
	{"profile-level-id", `**profile-level-id** indicates the default sub-profile, the subset of coding tools used to generate the stream or supported by the receiver, and the default level. [RFC 6184](https://datatracker.ietf.org/doc/html/rfc6184#section-8.1)`},
	{"level-idx", `**level-idx** is the highest AV1 level that may have been used to generate the bitstream or that the receiver supports. When absent it MUST be inferred to be 5 (level 3.1).`},
	{"profile", `**profile** is the highest AV1 profile that may have been used to generate the bitstream or that the receiver supports. When absent it MUST be inferred to be 0 ("Main" profile).`},
	{"tier", `**tier** is the highest AV1 tier that may have been used to generate the bitstream or that the receiver supports. When absent it MUST be inferred to be 0.`},
	{"repair-window", `**repair-window** is the time, in microseconds, spanning the source packets and their repair packets.`},
	{"minptime", `**minptime** is the minimum duration of media, in milliseconds, that SHOULD be encapsulated in a received packet.`},
	{"stereo", `**stereo** says whether the decoder prefers stereo (1) or mono (0) signals.`},
	{"sprop-stereo", `**sprop-stereo** says whether the sender is likely to produce stereo (1) or only mono (0) audio.`},
	{"useinbandfec", `**useinbandfec** specifies that the decoder can take advantage of the Opus in-band FEC.`},
}

func explainFmtp(v any) []string {
	f, ok := v.(*sdp.Fmtp)
	if !ok || f == nil {
		return nil
	}
	return present(fmtpParams, f.Has)
}

var ssrcAttributes = []keyed{
	{"cname", `The **cname** source attribute associates a media source with its Canonical End-Point Identifier (CNAME) source description item.`},
	{"msid", `**msid** is the same as the MediaStream ID in JavaScript.`},
}

func explainSSRC(v any) []string {
	s, ok := v.(*sdp.SSRC)
	if !ok || s == nil {
		return nil
	}
	return present(ssrcAttributes, s.Has)
}

var groupSemantics = map[string]string{
	"FID": `**FID** means Flow Identification, here an RTX repair flow.`,
}

func explainSSRCGroup(v any) []string {
	g, ok := v.(*sdp.SSRCGroup)
	if !ok || g == nil {
		return nil
	}
	if text, ok := groupSemantics[g.Semantics]; ok {
		return []string{text}
	}
	return nil
}

// present walks table in order and keeps the text of every key has reports.
func present(table []keyed, has func(string) bool) []string {
	var out []string
	for _, k := range table {
		if has(k.key) {
			out = append(out, k.text)
		}
	}
	return out
}
