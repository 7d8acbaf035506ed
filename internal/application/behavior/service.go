package behavior

type Service struct {
	repo BehaviorRepo
	pub  EventPublisher
}

func New(repo BehaviorRepo, pub EventPublisher) *Service {
	if pub == nil {
		pub = NoopPublisher{}
	}
	return &Service{repo: repo, pub: pub}
}
