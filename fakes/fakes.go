package fakes

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o ./fake_ratelimiter.go ../ratelimiter Limiter
//counterfeiter:generate -o ./fake_vcap_configuration_reader.go ../configutil VCAPConfigurationReader
//counterfeiter:generate -o ./fake_sample_db.go ../db SampleDB
//counterfeiter:generate -o ./fake_alert_db.go ../db AlertDB
//counterfeiter:generate -o ./fake_recommendation_db.go ../db RecommendationDB
//counterfeiter:generate -o ./fake_channel.go ../notifier Channel
//counterfeiter:generate -o ./fake_pinger.go ../healthendpoint Pinger
//counterfeiter:generate -o ./fake_api_health_reader.go ../healthendpoint ApiHealthReader
//counterfeiter:generate -o ./fake_bucket_header.go ../healthendpoint BucketHeader
//counterfeiter:generate -o ./fake_database_status.go ../healthendpoint DatabaseStatus
//counterfeiter:generate -o ./fake_completer.go ../recommendation/generative Completer
//counterfeiter:generate -o ./fake_recommender.go ../monitor Recommender
//counterfeiter:generate -o ./fake_prune_db.go ../db PruneDB
//counterfeiter:generate -o ./fake_operator.go ../operator Operator
