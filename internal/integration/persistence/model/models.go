package model

// All lists every model managed by the migrator, keyed by table name.
func All() map[string]any {
	return map[string]any{
		UserModel{}.TableName():            &UserModel{},
		RefreshTokenModel{}.TableName():    &RefreshTokenModel{},
		PropertyModel{}.TableName():        &PropertyModel{},
		ChannelModel{}.TableName():         &ChannelModel{},
		PropertyChannelModel{}.TableName(): &PropertyChannelModel{},
		ReservationModel{}.TableName():     &ReservationModel{},
		PaymentModel{}.TableName():         &PaymentModel{},
		ExpenseModel{}.TableName():         &ExpenseModel{},
		EmailQueueModel{}.TableName():      &EmailQueueModel{},
	}
}
