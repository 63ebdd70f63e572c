package pip

import (
	"errors"
	"image"

	"github.com/llehouerou/pipctl/internal/eventbus"
)

type fakeActivity struct {
	destroyed bool
}

func (a *fakeActivity) Destroyed() bool { return a.destroyed }

type fakeHost struct {
	activity  Activity
	level     int
	feature   bool
	permitted bool

	permissionChecks int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		activity:  &fakeActivity{},
		level:     33,
		feature:   true,
		permitted: true,
	}
}

func (h *fakeHost) CurrentActivity() Activity { return h.activity }
func (h *fakeHost) PlatformLevel() int        { return h.level }
func (h *fakeHost) HasPipFeature() bool       { return h.feature }

func (h *fakeHost) PipPermitted(Activity) bool {
	h.permissionChecks++
	return h.permitted
}

type startCall struct {
	cfg    *Configuration
	params Params
	player PlayerHandle
}

type fakeStarter struct {
	result Result
	calls  []startCall
}

func (s *fakeStarter) StartPip(_ Activity, cfg *Configuration, params Params, player PlayerHandle) Result {
	s.calls = append(s.calls, startCall{cfg: cfg, params: params, player: player})
	return s.result
}

type recordingShell struct {
	events []Notification
	err    error
}

func (s *recordingShell) OnPipEvent(n Notification) error {
	s.events = append(s.events, n)
	return s.err
}

type playerEventCall struct {
	eventID int
	payload any
}

type fakeObserver struct {
	results []PipResult
	events  []playerEventCall
}

func (o *fakeObserver) OnPipResult(r PipResult) { o.results = append(o.results, r) }

func (o *fakeObserver) OnPipPlayerEvent(eventID int, payload any) {
	o.events = append(o.events, playerEventCall{eventID: eventID, payload: payload})
}

// fixedIcons returns the same image for every path except those in fail.
type fixedIcons struct {
	img  image.Image
	fail map[string]bool
}

func (f fixedIcons) Resolve(path string) (image.Image, error) {
	if f.fail[path] {
		return nil, errors.New("decode failed")
	}
	return f.img, nil
}

// topicRecorder collects everything posted on one topic.
type topicRecorder struct {
	data []any
}

func (r *topicRecorder) OnEvent(_ eventbus.Topic, data any) { r.data = append(r.data, data) }

func listen(bus *eventbus.Bus, topic eventbus.Topic) *topicRecorder {
	r := &topicRecorder{}
	bus.Register(topic, r)
	return r
}

func fullAssets() AssetPaths {
	return AssetPaths{Back: "back.png", Resume: "play.png", Pause: "pause.png", Forward: "next.png"}
}
