package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Directory --dir ../domain/team --output domain/team --outpkg teammock --filename directory_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name ScheduleSource --dir ../domain/game --output domain/game --outpkg gamemock --filename schedule_source_mock.go
