package explain

import "github.com/jwulff/sdpview/internal/sdp"

var categories = map[sdp.Category]entry{
	sdp.CategoryVersion: {
		title: "v=0",
		body: []string{
			`The "v=" field gives the version of the Session Description Protocol. This memo defines version 0. There is no minor version number.`,
			`[RFC 4566](https://datatracker.ietf.org/doc/html/rfc4566#section-5.1)`,
		},
	},
	sdp.CategoryOrigin: {
		title: "o=<username> <sess-id> <sess-version> <nettype> <addrtype> <unicast-address>",
		body: []string{
			`The "o=" field gives the originator of the session (her username and the address of the user's host) plus a session identifier and version number.`,
			`The value of the <username> field SHOULD be "-". The sess-id MUST be representable by a 64-bit signed integer, and the value MUST be less than (2**63)-1. It is RECOMMENDED that the sess-id be constructed by generating a 64-bit quantity with the highest bit set to zero and the remaining 63 bits being cryptographically random. The <nettype> <addrtype> <unicast-address> tuple SHOULD be set to a non-meaningful address, such as IN IP4 0.0.0.0, to prevent leaking a local IP address in this field. The entire o= line needs to be unique, but selecting a random number for <sess-id> is sufficient to accomplish this.`,
			`[RFC 4566](https://datatracker.ietf.org/doc/html/rfc4566#section-5.2) [JSEP Initial Offers](https://rtcweb-wg.github.io/jsep/#rfc.section.5.2.1) [JSEP Subsequent Offers](https://rtcweb-wg.github.io/jsep/#rfc.section.5.2.2)`,
		},
	},
	sdp.CategorySessionName: {
		title: "s=<session name>",
		body: []string{
			`The third SDP line MUST be a "s=" line, as specified in [RFC 4566](https://datatracker.ietf.org/doc/html/rfc4566#section-5.3), Section 5.3. To match the "o=" line, a single dash SHOULD be used as the session name, e.g. "s=-". This differs from the advice in RFC 4566, which proposes a single space, but as both "o=" and "s=" are meaningless in JSEP, having the same meaningless value seems clearer.`,
		},
	},
	sdp.CategoryTiming: {
		title: "t=<start-time> <stop-time>",
		body: []string{
			`The "t=" lines specify the start and stop times for a session. Both <start-time> and <stop-time> SHOULD be set to zero, e.g. "t=0 0".`,
			`[RFC 4566](https://datatracker.ietf.org/doc/html/rfc4566#section-5.9)`,
		},
	},
	sdp.CategoryMedia: {
		title: "m=<media> <port> <proto> <fmt> ...",
		body: []string{
			`An m= section is generated for each RtpTransceiver that has been added to the PeerConnection, excluding any stopped RtpTransceivers. This is done in the order the RtpTransceivers were added to the PeerConnection. If there are no such RtpTransceivers, no m= sections are generated; more can be added later, as discussed in RFC 3264, Section 5.`,
			`For each m= section generated for an RtpTransceiver, establish a mapping between the transceiver and the index of the generated m= section.`,
			`Each m= section, provided it is not marked as bundle-only, MUST generate a unique set of ICE credentials and gather its own unique set of ICE candidates. Bundle-only m= sections MUST NOT contain any ICE credentials and MUST NOT gather any candidates.`,
			`For DTLS, all m= sections MUST use all the certificate(s) that have been specified for the PeerConnection. As a result, they MUST all have the same RFC 8122 fingerprint value(s), or these value(s) MUST be session-level attributes.`,
			`[JSEP](https://rtcweb-wg.github.io/jsep/#rfc.section.5.2.1)`,
		},
	},
	sdp.CategoryConnection: {
		title: "c=<nettype> <addrtype> <connection-address>",
		body: []string{
			`The m= line MUST be followed immediately by a "c=" line, as specified in RFC 4566, Section 5.7. As no candidates are available yet, the "c=" line must contain the "dummy" value "IN IP4 0.0.0.0", as defined in the Trickle ICE specification, Section 5.1.`,
			`Each "m=" and "c=" line MUST be filled in with the port and address of the default candidate for the m= section. In certain cases the m= line protocol may not match that of the default candidate, because the m= line protocol value MUST match what was supplied in the offer.`,
			`[RFC 4566](https://datatracker.ietf.org/doc/html/rfc4566#section-5.7)`,
		},
	},
}
