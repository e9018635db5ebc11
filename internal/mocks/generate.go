package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Document --dir ../domain/page --output domain/page --outpkg pagemock --filename document_mock.go
