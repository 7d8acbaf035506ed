package user

type Service struct {
	repo UserRepo
}

func New(repo UserRepo) *Service {
	return &Service{repo: repo}
}
