package recommend

type Service struct {
	repo SummaryRepo
}

func New(repo SummaryRepo) *Service {
	return &Service{repo: repo}
}
