package explain

// fieldOrder is the display order of explained attribute fields.
var fieldOrder = []string{
	"group", "msid-semantic", "extmap-allow-mixed", "rtcp", "ice-ufrag", "ice-pwd",
	"ice-options", "fingerprint", "setup", "mid", "extmap", "rtpmap", "rtcp-fb", "fmtp",
	"recvonly", "sendonly", "rtcp-mux", "rtcp-rsize", "candidate", "ice-lite", "ssrc",
	"msid", "ssrc-group", "rid",
}

const icePassword = `The "ice-pwd" and "ice-ufrag" attributes can appear at either the session-level or media-level. When present in both, the value in the media-level takes precedence. Thus, the value at the session-level is effectively a default that applies to all data streams, unless overridden by a media-level value. Whether present at the session or media-level, there MUST be an ice-pwd and ice-ufrag attribute for each data stream. If two data streams have identical ice-ufrag's, they MUST have identical ice-pwd's.`

const iceSDPLink = `[Session Description Protocol (SDP) Offer/Answer procedures for Interactive Connectivity Establishment (ICE)](https://datatracker.ietf.org/doc/html/draft-ietf-mmusic-ice-sip-sdp-24)`

var attributes = map[string]entry{
	"group": {
		title: "a=group:<semantics> <mid> ...",
		body: []string{
			`Once all m= sections have been generated, a session-level "a=group" attribute MUST be added as specified in [RFC 5888](https://datatracker.ietf.org/doc/html/rfc5888). This attribute MUST have semantics "BUNDLE", and MUST include the mid identifiers of each m= section. The effect of this is that the JSEP implementation offers all m= sections as one bundle group. However, whether the m= sections are bundle-only or not depends on the bundle policy.`,
		},
	},
	"msid-semantic": {
		title: "a=msid-semantic: WMS <stream id> ...",
		body: []string{
			`This line gives a unique identifier for the WebRTC Media Stream (WMS) during the PeerConnection's life. This identifier is used in the a=msid attributes of each m= line belonging to a specific media stream. It means that the RTP media stream (identified by the SSRC field present in every RTP packet) belongs to that media stream and is a track of it: an explicit association of an individual RTP media stream to the MediaStream WebRTC object.`,
			`[draft-ietf-mmusic-msid](https://datatracker.ietf.org/doc/html/draft-ietf-mmusic-msid)`,
		},
	},
	"extmap-allow-mixed": {
		title: "a=extmap-allow-mixed",
		body: []string{
			`In order to allow for backward interoperability with systems that do not support the mixing of one-byte and two-byte header extensions, the "a=extmap-allow-mixed" attribute indicates whether the participant is capable of supporting this mode.`,
			`[RFC 8285](https://www.rfc-editor.org/rfc/rfc8285.html#section-6)`,
		},
	},
	"rtcp": {
		title: "a=rtcp:<port> [<nettype> <addrtype> <connection-address>]",
		body: []string{
			`The RTCP attribute is used to document the RTCP port used for a media stream, when that port is not the next higher (odd) port number following the RTP port described in the media line.`,
			`[RFC 3605](https://datatracker.ietf.org/doc/html/rfc3605)`,
		},
	},
	"ice-ufrag": {
		title: "a=ice-ufrag:<ufrag>",
		body: []string{
			`The "ice-ufrag" and "ice-pwd" attributes convey the username fragment and password used by ICE for message integrity.`,
			icePassword,
			iceSDPLink,
		},
	},
	"ice-pwd": {
		title: "a=ice-pwd:<password>",
		body: []string{
			`The "ice-ufrag" and "ice-pwd" attributes convey the username fragment and password used by ICE for message integrity.`,
			icePassword,
			iceSDPLink,
		},
	},
	"ice-options": {
		title: "a=ice-options:<option> ...",
		body: []string{
			`**Trickle ICE** is a supplementary mode of ICE operation in which candidates can be exchanged incrementally as soon as they become available (and simultaneously with the gathering of other candidates). Connectivity checks can also start as soon as candidate pairs have been created. Because Trickle ICE enables candidate gathering and connectivity checks to be done in parallel, the method can considerably accelerate the process of establishing a communication session.`,
			`[draft-ietf-ice-trickle](https://datatracker.ietf.org/doc/html/draft-ietf-ice-trickle-21)`,
		},
	},
	"fingerprint": {
		title: "a=fingerprint:<hash-function> <fingerprint>",
		body: []string{
			`Because DTLS-SRTP is required, one or more "a=fingerprint" attributes must be present.`,
			`When establishing the DTLS-SRTP connection, the fingerprint is verified against the DTLS certificate, allowing peers to authenticate each other before starting to transmit media.`,
			`[RFC 8122](https://datatracker.ietf.org/doc/html/rfc8122)`,
		},
	},
	"setup": {
		title: "a=setup:<role>",
		body: []string{
			`The 'setup' attribute indicates which of the end points should initiate the connection establishment.`,
			`In the context of WebRTC DTLS-SRTP connection establishment, the endpoint that is the offerer **MUST** use the setup attribute value of **setup:actpass** and be prepared to receive a DTLS client_hello before it receives the answer.`,
			`The answerer MUST use either a setup attribute value of **setup:active** or **setup:passive**. If the answerer uses setup:passive, the DTLS handshake will not begin until the answer is received, which adds additional latency. **setup:active** allows the answer and the DTLS handshake to occur in parallel, so **setup:active** is **RECOMMENDED**. Whichever party is active **MUST** initiate a DTLS handshake by sending a ClientHello over each flow (host/port quartet).`,
			`[RFC 5763](https://datatracker.ietf.org/doc/html/rfc5763#section-5) [RFC 4145](https://datatracker.ietf.org/doc/html/rfc4145#section-4.1)`,
		},
	},
	"mid": {
		title: "a=mid:<identification-tag>",
		body: []string{
			`The MID is a "media stream identification" value, as defined in RFC 5888, Section 4, which provides a more robust way to identify the m= section in the session description.`,
			`The "a=group:BUNDLE" attribute MUST include the MID identifiers specified in the bundle group.`,
			`[RFC 5888](https://datatracker.ietf.org/doc/html/rfc5888#section-4)`,
		},
	},
	"extmap": {
		title: "a=extmap:<id>[/<direction>] <uri> [<extension attributes>]",
		body: []string{
			`The a=extmap attribute is used to define a mapping for an RTP header extension, which allows the inclusion of additional metadata in RTP packets.`,
		},
	},
	"rtpmap": {
		title: "a=rtpmap:<payload type> <encoding name>/<clock rate>[/<encoding parameters>]",
		body: []string{
			`This attribute maps from an RTP payload type number (as used in an "m=" line) to an encoding name denoting the payload format to be used. It also provides information on the clock rate and encoding parameters.`,
		},
	},
	"rtcp-fb": {
		title: "a=rtcp-fb:<payload type|*> <type> [<parameter>]",
		body: []string{
			`The a=rtcp-fb attribute is used to specify feedback parameters for RTP streams, allowing receivers to provide feedback to senders about the quality of the media transmission.`,
		},
	},
	"fmtp": {
		title: "a=fmtp:<payload type> <format specific parameters>",
		body: []string{
			`**fmtp** allows parameters that are specific to a particular format to be conveyed in a way that SDP does not have to understand them.`,
		},
	},
	"recvonly": {
		title: "a=recvonly",
		body: []string{
			`If the offerer wishes to only receive media from its peer, it MUST mark the stream as recvonly.`,
			`[RFC 3264](https://datatracker.ietf.org/doc/html/rfc3264#section-5.1)`,
		},
	},
	"sendonly": {
		title: "a=sendonly",
		body: []string{
			`If the offerer wishes to only send media to its peer, it MUST mark the stream as sendonly.`,
			`[RFC 3264](https://datatracker.ietf.org/doc/html/rfc3264#section-5.1)`,
		},
	},
	"rtcp-mux": {
		title: "a=rtcp-mux",
		body: []string{
			`**a=rtcp-mux** attribute indicates the desire to multiplex RTP and RTCP onto a single port.`,
			`[RFC 5761](https://datatracker.ietf.org/doc/html/rfc5761#section-5.1.3)`,
		},
	},
	"rtcp-rsize": {
		title: "a=rtcp-rsize",
		body: []string{
			`**a=rtcp-rsize** indicates whether the session participant is capable of supporting Reduced-Size RTCP for applications that use SDP for configuration of RTP sessions.`,
			`[RFC 5506](https://datatracker.ietf.org/doc/html/rfc5506)`,
		},
	},
	"candidate": {
		title: "a=candidate:<foundation> <component-id> <transport> <priority> <connection-address> <port> typ <cand-type>",
		body: []string{
			`The **candidate** attribute is a media-level attribute only. It contains a transport address for a candidate that can be used for connectivity checks.`,
			`<foundation>: an identifier that is equivalent for two candidates that are of the same type, share the same base, and come from the same STUN server.`,
			`<component-id>: for data streams based on RTP, candidates for the actual RTP media MUST have a component ID of 1, and candidates for RTCP MUST have a component ID of 2.`,
			`<transport>: indicates the transport protocol for the candidate.`,
			`<priority>: used by ICE to determine the order of the connectivity checks and the relative preference for candidates. Higher-priority values give more priority over lower values.`,
			`<connection-address>: the IP address of the candidate.`,
			`<port>: the port of the candidate.`,
			`<cand-type>: "host", "srflx", "prflx" or "relay" for host, server reflexive, peer reflexive and relayed candidates.`,
			`[draft-ietf-mmusic-ice-sip-sdp-24](https://datatracker.ietf.org/doc/html/draft-ietf-mmusic-ice-sip-sdp-24)`,
		},
	},
	"ice-lite": {
		title: "a=ice-lite",
		body: []string{
			`**ice-lite** is a minimal version of the ICE specification, intended for servers running on a public IP address.`,
			`**ice-lite** is easy to implement, requiring the media server to only answer incoming STUN binding requests and act as a controlled entity in the ICE process itself. This simplicity makes it popular among SFUs and other media servers.`,
		},
	},
	"ssrc": {
		title: "a=ssrc:<ssrc-id> <attribute>[:<value>]",
		body: []string{
			`**SSRC** specifies the Synchronization Source (SSRC) identifier for a particular media source. It describes RTP media sources, identified by their synchronization source identifiers, in SDP, associates attributes with these sources, and expresses relationships among sources.`,
			`[RFC 5576](https://datatracker.ietf.org/doc/html/rfc5576)`,
		},
	},
	"msid": {
		title: "a=msid:<stream id> <track id>",
		body: []string{
			`**msid** allows endpoints to associate RTP streams that are described in separate media descriptions with the right MediaStreams. It also allows endpoints to carry an identifier for each MediaStreamTrack in its "appdata" field.`,
			`[RFC 8830](https://www.rfc-editor.org/rfc/rfc8830.html)`,
		},
	},
	"ssrc-group": {
		title: "a=ssrc-group:<semantics> <ssrc-id> ...",
		body: []string{
			`**ssrc-group** expresses a relationship among several sources of an RTP session.`,
			`[RFC 5576](https://datatracker.ietf.org/doc/html/rfc5576#section-4.2)`,
		},
	},
	"rid": {
		title: "a=rid:<rid-id> <direction> [<restrictions>]",
		body: []string{
			`The use of **rid** identifiers allows the individual encodings to be disambiguated even though they are all part of the same m= section.`,
			`**RIDs** can be used to express dependencies between multiple layers of scalable encodings. Adding scalable layers to a session within a multiparty conference gives a selective forwarding unit (SFU) further flexibility to selectively forward packets from a source that best match the bandwidth and capabilities of diverse receivers.`,
			`[RFC 8851](https://datatracker.ietf.org/doc/html/rfc8851#section-11.2)`,
		},
	},
}
