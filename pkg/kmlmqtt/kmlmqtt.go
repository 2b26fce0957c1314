// Package kmlmqtt publishes placemark positions to an MQTT broker.
package kmlmqtt

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"math/rand"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"kmlstream/pkg/kml"
)

const (
	DefaultBroker = "broker.emqx.io"
	DefaultPort   = 1883
	TopicPrefix   = "kmlstream/placemarks/"
)

// Endpoint is a broker address decoded from a URI of the form
// mqtt://[user[:pass]@]broker[:port]/topic[?cafile=file].
type Endpoint struct {
	Broker   string
	Topic    string
	User     string
	Password string
	TLS      *tls.Config
}

func newTLSConfig(cafile string) (*tls.Config, error) {
	certpool := x509.NewCertPool()
	ca, err := os.ReadFile(cafile)
	if err != nil {
		return nil, errors.Wrap(err, "cafile")
	}
	certpool.AppendCertsFromPEM(ca)
	return &tls.Config{RootCAs: certpool, ClientAuth: tls.NoClientCert}, nil
}

// ParseURI decodes uri. A missing host, port or topic falls back to
// DefaultBroker, DefaultPort and a random topic under TopicPrefix.
func ParseURI(uri string) (*Endpoint, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, errors.Wrap(err, "broker uri")
	}
	ep := &Endpoint{}
	broker := u.Hostname()
	if broker == "" {
		broker = DefaultBroker
	}
	port := DefaultPort
	if p := u.Port(); p != "" {
		if port, err = strconv.Atoi(p); err != nil {
			return nil, errors.Wrapf(err, "broker port %q", p)
		}
	}
	if len(u.Path) > 1 {
		ep.Topic = u.Path[1:]
	}
	if ep.Topic == "" {
		ep.Topic = fmt.Sprintf("%s_%x", TopicPrefix, rand.Int63())
	}
	if u.User != nil {
		ep.User = u.User.Username()
		ep.Password, _ = u.User.Password()
	}

	scheme := "tcp"
	if ca := u.Query().Get("cafile"); ca != "" {
		if ep.TLS, err = newTLSConfig(ca); err != nil {
			return nil, err
		}
		scheme = "ssl"
	}
	switch u.Scheme {
	case "ws":
		scheme = "ws"
	case "wss":
		scheme = "wss"
		if ep.TLS == nil {
			ep.TLS = &tls.Config{ClientAuth: tls.NoClientCert}
		}
	case "mqtts", "ssl":
		scheme = "ssl"
		if ep.TLS == nil {
			ep.TLS = &tls.Config{ClientAuth: tls.NoClientCert}
		}
	}
	if len(os.Getenv("NOVERIFYSSL")) > 0 && ep.TLS != nil {
		ep.TLS.InsecureSkipVerify = true
	}

	mpath := ""
	if scheme == "ws" || scheme == "wss" {
		mpath = "/mqtt"
	}
	ep.Broker = fmt.Sprintf("%s://%s:%d%s", scheme, broker, port, mpath)
	return ep, nil
}

type Publisher struct {
	topic string
	send  func(topic, msg string) error
	// Log, when set, receives every message as "millis|message".
	Log io.Writer
}

// New connects to the broker named by uri.
func New(uri string, log logrus.FieldLogger) (*Publisher, error) {
	ep, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	opts := mqtt.NewClientOptions()
	opts.AddBroker(ep.Broker)
	opts.SetTLSConfig(ep.TLS)
	opts.SetClientID(fmt.Sprintf("%x", rand.Int63()))
	opts.SetUsername(ep.User)
	opts.SetPassword(ep.Password)
	opts.OnConnect = func(mqtt.Client) {
		log.WithField("broker", ep.Broker).Info("mqtt connected")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.WithField("broker", ep.Broker).Warnf("mqtt connection lost: %v", err)
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, errors.Wrap(token.Error(), "mqtt connect")
	}
	send := func(topic, msg string) error {
		token := client.Publish(topic, 0, false, msg)
		token.Wait()
		return token.Error()
	}
	return &Publisher{topic: ep.Topic, send: send}, nil
}

func (p *Publisher) Topic() string {
	return p.topic
}

func (p *Publisher) publish(msg string) error {
	if p.Log != nil {
		fmt.Fprintf(p.Log, "%d|%s\n", time.Now().UnixMilli(), msg)
	}
	if p.send == nil {
		return nil
	}
	return errors.Wrap(p.send(p.topic, msg), "mqtt publish")
}

// PublishDocument sends one message per positioned placemark in document
// order and returns the number sent.
func (p *Publisher) PublishDocument(k *kml.Kml) (int, error) {
	msgs := Messages(k)
	for i, m := range msgs {
		if err := p.publish(m); err != nil {
			return i, err
		}
	}
	return len(msgs), nil
}

// Messages formats the position of every placemark in k. The position is
// the first coordinate of the placemark's geometry.
func Messages(k *kml.Kml) []string {
	var msgs []string
	if k == nil {
		return nil
	}
	kml.Walk(k.Feature, func(f kml.Feature) {
		pm, ok := f.(*kml.Placemark)
		if !ok || pm.Geometry == nil {
			return
		}
		cs := kml.GeometryCoordinates(pm.Geometry)
		if len(cs) == 0 {
			return
		}
		var when kml.DateTime
		if ts, ok := pm.TimePrimitive.(*kml.TimeStamp); ok {
			when = ts.When
		}
		msgs = append(msgs, positionMessage(pm.Name, cs[0], when))
	})
	return msgs
}

var nameEscaper = strings.NewReplacer(",", " ", ":", " ", "\n", " ")

func positionMessage(name string, c kml.Coordinate, when kml.DateTime) string {
	var sb strings.Builder
	sb.WriteString("name:")
	sb.WriteString(nameEscaper.Replace(name))
	sb.WriteString(fmt.Sprintf(",lat:%.8f,lon:%.8f,alt:%.1f", c.Lat, c.Lon, c.Alt))
	if !when.IsZero() {
		sb.WriteString(",utc:")
		sb.WriteString(strconv.FormatInt(when.Time.Unix(), 10))
	}
	return sb.String()
}
