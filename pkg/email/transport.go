package email

import "errors"

// New builds the Sender selected by cfg.Transport and reports which one it is.
// A failure here is a startup error: the worker cannot deliver anything without a transport.
func New(cfg Config) (Sender, Transport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	transport := cfg.Transport()
	switch transport {
	case TransportSMTP:
		s, err := NewSMTPSender(cfg)
		if err != nil {
			return nil, transport, errors.Join(ErrTransportUnavailable, err)
		}
		return s, transport, nil
	case TransportPostmark:
		s, err := NewPostmarkSender(cfg)
		if err != nil {
			return nil, transport, errors.Join(ErrTransportUnavailable, err)
		}
		return s, transport, nil
	default:
		return NewDevSender(cfg.DevDir), transport, nil
	}
}
