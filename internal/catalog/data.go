package catalog

import "adhkar-cli/internal/model"

// adhkarData is the compiled-in catalog. Texts are authentic supplications
// from the Quran and Sunnah; ordering within a category is the reading order.
var adhkarData = []model.Category{
	{
		ID:                "morning",
		Title:             "Morning Adhkar",
		ArabicTitle:       "أذكار الصباح",
		Description:       "Recite these supplications after Fajr prayer until sunrise",
		ArabicDescription: "تقرأ هذه الأذكار بعد صلاة الفجر حتى شروق الشمس",
		Adhkar: []model.Dhikr{
			{
				ID:          "morning-1",
				Arabic:      "أَعُوذُ بِاللهِ مِنْ الشَّيْطَانِ الرَّجِيمِ\nاللّهُ لاَ إِلَـهَ إِلاَّ هُوَ الْحَيُّ الْقَيُّومُ لاَ تَأْخُذُهُ سِنَةٌ وَلاَ نَوْمٌ لَّهُ مَا فِي السَّمَاوَاتِ وَمَا فِي الأَرْضِ مَن ذَا الَّذِي يَشْفَعُ عِنْدَهُ إِلاَّ بِإِذْنِهِ يَعْلَمُ مَا بَيْنَ أَيْدِيهِمْ وَمَا خَلْفَهُمْ وَلاَ يُحِيطُونَ بِشَيْءٍ مِّنْ عِلْمِهِ إِلاَّ بِمَا شَاء وَسِعَ كُرْسِيُّهُ السَّمَاوَاتِ وَالأَرْضَ وَلاَ يَؤُودُهُ حِفْظُهُمَا وَهُوَ الْعَلِيُّ الْعَظِيمُ",
				Translation: "Allah! There is no god but He, the Living, the Self-subsisting, the Eternal. Neither slumber nor sleep overtakes Him. To Him belongs whatever is in the heavens and whatever is on earth. Who is there that can intercede with Him except by His permission? He knows what is before them and what is behind them, and they encompass nothing of His knowledge except what He wills. His Kursi extends over the heavens and the earth, and their preservation tires Him not. And He is the Most High, the Most Great.",
				Source:      "سورة البقرة، آية ٢٥٥",
				Virtue:      "من قالها حين يصبح أجير من الجن حتى يمسى ومن قالها حين يمسى أجير من الجن حتى يصبح",
				Repeat:      1,
			},
			{
				ID:              "morning-2",
				Arabic:          "بِسْمِ اللهِ الرَّحْمنِ الرَّحِيم\nقُلْ هُوَ ٱللَّهُ أَحَدٌ، ٱللَّهُ ٱلصَّمَدُ، لَمْ يَلِدْ وَلَمْ يُولَدْ، وَلَمْ يَكُن لَّهُۥ كُفُوًا أَحَدٌۢ",
				Transliteration: "Bismillahir Rahmanir Raheem. Qul huwal laahu ahad, Allahus-samad, lam yalid wa lam yoolad, wa lam yakul-lahu kufuwan ahad.",
				Translation:     "Say: He is Allah, the One. Allah, the Eternal Refuge. He neither begets nor is born, nor is there to Him any equivalent.",
				Source:          "سورة الإخلاص",
				Virtue:          "من قالها حين يصبح وحين يمسى كفته من كل شىء (الإخلاص والمعوذتين)",
				Repeat:          3,
			},
			{
				ID:              "morning-3",
				Arabic:          "بِسْمِ اللهِ الرَّحْمنِ الرَّحِيم\nقُلْ أَعُوذُ بِرَبِّ ٱلْفَلَقِ، مِن شَرِّ مَا خَلَقَ، وَمِن شَرِّ غَاسِقٍ إِذَا وَقَبَ، وَمِن شَرِّ ٱلنَّفَّٰثَٰتِ فِى ٱلْعُقَدِ، وَمِن شَرِّ حَاسِدٍ إِذَا حَسَدَ",
				Transliteration: "Bismillahir Rahmanir Raheem. Qul a'oodhu bi rabbil-falaq, min sharri ma khalaq, wa min sharri ghasiqin idha waqab, wa min sharrin-naffathati fil 'uqad, wa min sharri hasidin idha hasad.",
				Translation:     "Say: I seek refuge with the Lord of the Dawn, from the evil of what He has created, and from the evil of the darkening (night) as it comes with its darkness, and from the evil of those who practice witchcraft when they blow in the knots, and from the evil of the envier when he envies.",
				Source:          "سورة الفلق",
				Repeat:          3,
			},
			{
				ID:              "morning-4",
				Arabic:          "بِسْمِ اللهِ الرَّحْمنِ الرَّحِيم\nقُلْ أَعُوذُ بِرَبِّ ٱلنَّاسِ، مَلِكِ ٱلنَّاسِ، إِلَٰهِ ٱلنَّاسِ، مِن شَرِّ ٱلْوَسْوَاسِ ٱلْخَنَّاسِ، ٱلَّذِى يُوَسْوِسُ فِى صُدُورِ ٱلنَّاسِ، مِنَ ٱلْجِنَّةِ وَٱلنَّاسِ",
				Transliteration: "Bismillahir Rahmanir Raheem. Qul a'oodhu birabbin-nas, malikin-nas, ilahin-nas, min sharril-waswasil-khannas, alladhee yuwaswisu fee sudoorin-nas, minal-jinnati wannas.",
				Translation:     "Say: I seek refuge with the Lord of mankind, the King of mankind, the God of mankind, from the evil of the whisperer who withdraws, who whispers in the breasts of mankind, from among the jinn and mankind.",
				Source:          "سورة الناس",
				Repeat:          3,
			},
			{
				ID:              "morning-5",
				Arabic:          "أَصْـبَحْنا وَأَصْـبَحَ المُـلْكُ لله وَالحَمدُ لله ، لا إلهَ إلاّ اللّهُ وَحدَهُ لا شَريكَ لهُ، لهُ المُـلكُ ولهُ الحَمْـد، وهُوَ على كلّ شَيءٍ قدير ، رَبِّ أسْـأَلُـكَ خَـيرَ ما في هـذا اليوم وَخَـيرَ ما بَعْـدَه ، وَأَعـوذُ بِكَ مِنْ شَـرِّ ما في هـذا اليوم وَشَرِّ ما بَعْـدَه، رَبِّ أَعـوذُبِكَ مِنَ الْكَسَـلِ وَسـوءِ الْكِـبَر ، رَبِّ أَعـوذُ بِكَ مِنْ عَـذابٍ في النّـارِ وَعَـذابٍ في القَـبْر",
				Transliteration: "Asbahna wa asbahal mulku lillah walhamdu lillah, la ilaha illal-lah wahdahu la shareeka lah, lahul mulku walahul hamd, wahuwa 'ala kulli shay'in qadeer. Rabbi as'aluka khayra ma fee hadhal yawm wa khayra ma ba'dahu, wa a'oodhu bika min sharri ma fee hadhal yawm wa sharri ma ba'dahu. Rabbi a'oodhu bika minal kasal, wa soo'il kibar. Rabbi a'oodhu bika min 'adhabin fin-nar, wa 'adhabin fil-qabr.",
				Translation:     "We have reached the morning and at this very time all sovereignty belongs to Allah, and all praise is for Allah. None has the right to be worshipped except Allah, alone, without partner, to Him belongs all sovereignty and praise and He is over all things omnipotent. My Lord, I ask You for the good of this day and the good of what follows it and I take refuge in You from the evil of this day and the evil of what follows it. My Lord, I take refuge in You from laziness and senility. My Lord, I take refuge in You from torment in the Fire and punishment in the grave.",
				Repeat:          1,
			},
			{
				ID:              "morning-6",
				Arabic:          "اللّهـمَّ أَنْتَ رَبِّـي لا إلهَ إلاّ أَنْتَ ، خَلَقْتَنـي وَأَنا عَبْـدُك ، وَأَنا عَلـى عَهْـدِكَ وَوَعْـدِكَ ما اسْتَـطَعْـت ، أَعـوذُبِكَ مِنْ شَـرِّ ما صَنَـعْت ، أَبـوءُ لَـكَ بِنِعْـمَتِـكَ عَلَـيَّ وَأَبـوءُ بِذَنْـبي فَاغْفـِرْ لي فَإِنَّـهُ لا يَغْـفِرُ الذُّنـوبَ إِلاّ أَنْتَ",
				Transliteration: "Allahumma anta rabbee la ilaha illa ant, khalaqtanee wa ana abduk, wa ana 'ala 'ahdika wa wa'dika mastata't, a'oodhu bika min sharri ma sana't, aboo'u laka bini'matika 'alayya wa aboo'u bidhanbee faghfir lee fa'innahu la yaghfirudh-dhunooba illa ant.",
				Translation:     "O Allah, You are my Lord, none has the right to be worshipped except You, You created me and I am Your servant and I abide to Your covenant and promise as best I can, I take refuge in You from the evil of which I committed. I acknowledge Your favor upon me and I acknowledge my sin, so forgive me, for verily none can forgive sins except You.",
				Virtue:          "من قالها موقنا بها حين يمسى ومات من ليلته دخل الجنة وكذلك حين يصبح",
				Repeat:          1,
			},
			{
				ID:              "morning-7",
				Arabic:          "رَضيـتُ بِاللهِ رَبَّـاً وَبِالإسْلامِ ديـناً وَبِمُحَـمَّدٍ صلى الله عليه وسلم نَبِيّـاً",
				Transliteration: "Radheetu billahi rabban, wabil-islami deenan, wa bi-Muhammadin sallallahu alayhi wa sallama nabiyyan.",
				Translation:     "I am pleased with Allah as my Lord, with Islam as my religion and with Muhammad (peace and blessings of Allah be upon him) as my Prophet.",
				Virtue:          "من قالها حين يصبح وحين يمسى كان حقا على الله أن يرضيه يوم القيامة",
				Repeat:          3,
			},
			{
				ID:              "morning-8",
				Arabic:          "اللّهُـمَّ إِنِّـي أَصْبَـحْتُ أُشْـهِدُك ، وَأُشْـهِدُ حَمَلَـةَ عَـرْشِـك ، وَمَلَائِكَتَكَ ، وَجَمـيعَ خَلْـقِك ، أَنَّـكَ أَنْـتَ اللهُ لا إلهَ إلاّ أَنْـتَ وَحْـدَكَ لا شَريكَ لَـك ، وَأَنَّ ُ مُحَمّـداً عَبْـدُكَ وَرَسـولُـك",
				Transliteration: "Allahumma innee asbahtu ush-hiduka, wa ush-hidu hamalata 'arshika, wa mala'ikataka, wa jamee'a khalqika, annaka antallahu la ilaha illa anta wahdaka la shareeka lak, wa anna Muhammadan 'abduka wa rasooluk.",
				Translation:     "O Allah, verily I have reached the morning and call on You, the bearers of Your throne, Your angels, and all of Your creation to witness that You are Allah, none has the right to be worshipped except You, alone, without partner and that Muhammad is Your servant and Your Messenger.",
				Virtue:          "من قالها أعتقه الله من النار",
				Repeat:          4,
			},
			{
				ID:              "morning-9",
				Arabic:          "اللّهُـمَّ ما أَصْبَـَحَ بي مِـنْ نِعْـمَةٍ أَو بِأَحَـدٍ مِـنْ خَلْـقِك ، فَمِـنْكَ وَحْـدَكَ لا شريكَ لَـك ، فَلَـكَ الْحَمْـدُ وَلَـكَ الشُّكْـر",
				Transliteration: "Allahumma ma asbaha bee min ni'matin, aw bi'ahadin min khalqika, faminka wahdaka la shareeka lak, falakal-hamdu wa lakash-shukr.",
				Translation:     "O Allah, what blessing I or any of Your creation have risen upon, is from You alone, without partner, so for You is all praise and unto You all thanks.",
				Virtue:          "من قالها حين يصبح أدى شكر يومه",
				Repeat:          1,
			},
			{
				ID:              "morning-10",
				Arabic:          "حَسْبِـيَ اللّهُ لا إلهَ إلاّ هُوَ عَلَـيهِ تَوَكَّـلتُ وَهُوَ رَبُّ العَرْشِ العَظـيم",
				Transliteration: "Hasbiyal-lahu la ilaha illa huwa, 'alayhi tawakkalt, wa huwa rabbul-'arshil-'adheem.",
				Translation:     "Allah is sufficient for me, none has the right to be worshipped except Him, upon Him I rely and He is Lord of the exalted throne.",
				Virtue:          "من قالها كفاه الله ما أهمه من أمر الدنيا والأخرة",
				Repeat:          7,
			},
			{
				ID:              "morning-11",
				Arabic:          "بِسـمِ اللهِ الذي لا يَضُـرُّ مَعَ اسمِـهِ شَيءٌ في الأرْضِ وَلا في السّمـاءِ وَهـوَ السّمـيعُ العَلـيم",
				Transliteration: "Bismillahil-ladhi la yadurru ma'as-mihi shay'un fil-ardi wa la fis-sama'i, wa huwas-sami'ul-'alim.",
				Translation:     "In the name of Allah with whose name nothing is harmed on earth nor in the heavens and He is The All-Hearing, The All-Knowing.",
				Virtue:          "لم يضره من الله شيء",
				Repeat:          3,
			},
			{
				ID:              "morning-12",
				Arabic:          "اللّهُـمَّ بِكَ أَصْـبَحْنا وَبِكَ أَمْسَـينا ، وَبِكَ نَحْـيا وَبِكَ نَمُـوتُ وَإِلَـيْكَ النُّـشُور",
				Transliteration: "Allahumma bika asbahna, wa bika amsayna, wa bika nahya, wa bika namootu, wa ilaykan-nushoor.",
				Translation:     "O Allah, by Your leave we have reached the morning and by Your leave we have reached the evening, by Your leave we live and die and unto You is our resurrection.",
				Repeat:          1,
			},
			{
				ID:              "morning-13",
				Arabic:          "أَصْبَـحْـنا عَلَى فِطْرَةِ الإسْلاَمِ، وَعَلَى كَلِمَةِ الإِخْلاَصِ، وَعَلَى دِينِ نَبِيِّنَا مُحَمَّدٍ صَلَّى اللهُ عَلَيْهِ وَسَلَّمَ، وَعَلَى مِلَّةِ أَبِينَا إبْرَاهِيمَ حَنِيفاً مُسْلِماً وَمَا كَانَ مِنَ المُشْرِكِينَ",
				Transliteration: "Asbahna 'ala fitratil-islam, wa 'ala kalimatil-ikhlas, wa 'ala dini nabiyyina Muhammadin sallallahu 'alayhi wa sallam, wa 'ala millati abeena Ibrahima haneefan musliman, wa ma kana minal-mushrikeen.",
				Translation:     "We have reached the morning upon the natural way of Islam, the word of pure faith, the religion of our Prophet Muhammad (peace and blessings of Allah be upon him) and the religion of our forefather Ibrahim, who was upright and a Muslim and was not from among the polytheists.",
				Repeat:          1,
			},
			{
				ID:              "morning-14",
				Arabic:          "سُبْحـانَ اللهِ وَبِحَمْـدِهِ عَدَدَ خَلْـقِه ، وَرِضـا نَفْسِـه ، وَزِنَـةَ عَـرْشِـه ، وَمِـدادَ كَلِمـاتِـه",
				Transliteration: "Subhanallahi wa bihamdihi, 'adada khalqihi, wa rida nafsihi, wa zinata 'arshihi, wa midada kalimatihi.",
				Translation:     "Glory and praise is to Allah, by the number of His creation, by His pleasure, by the weight of His throne and by the ink of His words.",
				Repeat:          3,
			},
			{
				ID:              "morning-15",
				Arabic:          "اللّهُـمَّ عافِـني في بَدَنـي ، اللّهُـمَّ عافِـني في سَمْـعي ، اللّهُـمَّ عافِـني في بَصَـري ، لا إلهَ إلاّ أَنْـتَ",
				Transliteration: "Allahumma 'afini fi badani, Allahumma 'afini fi sam'i, Allahumma 'afini fi basari, la ilaha illa ant.",
				Translation:     "O Allah, grant my body health, O Allah, grant my hearing health, O Allah, grant my sight health. None has the right to be worshipped except You.",
				Repeat:          3,
			},
			{
				ID:              "morning-16",
				Arabic:          "اللّهُـمَّ إِنّـي أَعـوذُ بِكَ مِنَ الْكُـفر ، وَالفَـقْر ، وَأَعـوذُ بِكَ مِنْ عَذابِ القَـبْر ، لا إلهَ إلاّ أَنْـتَ",
				Transliteration: "Allahumma inni a'oodhu bika minal-kufri, wal-faqri, wa a'oodhu bika min 'adhabil-qabri, la ilaha illa ant.",
				Translation:     "O Allah, I take refuge in You from disbelief and poverty, and I take refuge in You from the punishment of the grave. None has the right to be worshipped except You.",
				Repeat:          3,
			},
			{
				ID:              "morning-17",
				Arabic:          "اللّهُـمَّ إِنِّـي أسْـأَلُـكَ العَـفْوَ وَالعـافِـيةَ في الدُّنْـيا وَالآخِـرَة ، اللّهُـمَّ إِنِّـي أسْـأَلُـكَ العَـفْوَ وَالعـافِـيةَ في ديني وَدُنْـيايَ وَأهْـلي وَمالـي ، اللّهُـمَّ اسْتُـرْ عـوْراتي وَآمِـنْ رَوْعاتـي ، اللّهُـمَّ احْفَظْـني مِن بَـينِ يَدَيَّ وَمِن خَلْفـي وَعَن يَمـيني وَعَن شِمـالي ، وَمِن فَوْقـي ، وَأَعـوذُ بِعَظَمَـتِكَ أَن أُغْـتالَ مِن تَحْتـي",
				Transliteration: "Allahumma inni as'alukal-'afwa wal-'afiyah fid-dunya wal-akhirah. Allahumma inni as'alukal-'afwa wal-'afiyah fi dini wa dunyaya wa ahli wa mali. Allahum-mastur 'awrati, wa amin raw'ati, Allahumm-ahfadhni min bayni yadayya, wa min khalfi, wa 'an yamini, wa 'an shimali, wa min fawqi, wa a'oodhu bi'adhamatika an ughtala min tahti.",
				Translation:     "O Allah, I ask You for pardon and well-being in this life and the next. O Allah, I ask You for pardon and well-being in my religious and worldly affairs, and my family and my wealth. O Allah, veil my weaknesses and set at ease my dismay. O Allah, preserve me from the front and from behind and on my right and on my left and from above, and I take refuge with You lest I be swallowed up by the earth.",
				Repeat:          1,
			},
			{
				ID:              "morning-18",
				Arabic:          "يَا حَيُّ يَا قيُّومُ بِرَحْمَتِكَ أسْتَغِيثُ أصْلِحْ لِي شَأنِي كُلَّهُ وَلاَ تَكِلْنِي إلَى نَفْسِي طَـرْفَةَ عَيْنٍ",
				Transliteration: "Ya Hayyu, Ya Qayyum, bi-rahmatika astaghith, aslih li sha'ni kullahu, wa la takilni ila nafsi tarfata 'ayn.",
				Translation:     "O Ever Living, O Self-Sustaining and All-Sustaining, by Your mercy I seek assistance, rectify for me all of my affairs and do not leave me to myself, even for the blink of an eye.",
				Repeat:          3,
			},
			{
				ID:              "morning-19",
				Arabic:          "أَصْبَـحْـنا وَأَصْبَـحْ المُـلكُ للهِ رَبِّ العـالَمـين ، اللّهُـمَّ إِنِّـي أسْـأَلُـكَ خَـيْرَ هـذا الـيَوْم ، فَـتْحَهُ ، وَنَصْـرَهُ ، وَنـورَهُ وَبَـرَكَتَـهُ ، وَهُـداهُ ، وَأَعـوذُ بِـكَ مِـنْ شَـرِّ ما فـيهِ وَشَـرِّ ما بَعْـدَه",
				Transliteration: "Asbahna wa asbahal-mulku lillahi rabbil-'alamin. Allahumma inni as'aluka khayra hadhal-yawm, fat-hahu, wa nasrahu, wa noorahu, wa barakatahu, wa hudahu, wa a'oodhu bika min sharri ma fihi, wa sharri ma ba'dahu.",
				Translation:     "We have reached the morning and at this very time unto Allah belongs all sovereignty, and all praise is for Allah. O Allah, I ask You for the good of this day, its triumphs and its victories, its light and its blessings and its guidance, and I take refuge in You from the evil of this day and the evil that follows it.",
				Repeat:          1,
			},
			{
				ID:              "morning-20",
				Arabic:          "اللّهُـمَّ عالِـمَ الغَـيْبِ وَالشّـهادَةِ فاطِـرَ السّماواتِ وَالأرْضِ رَبَّ كـلِّ شَـيءٍ وَمَليـكَه ، أَشْهَـدُ أَنْ لا إِلـهَ إِلاّ أَنْت ، أَعـوذُ بِكَ مِن شَـرِّ نَفْسـي وَمِن شَـرِّ الشَّيْـطانِ وَشِرْكِهِ ، وَأَنْ أَقْتَـرِفَ عَلـى نَفْسـي سوءاً أَوْ أَجُـرَّهُ إِلـى مُسْـلِم",
				Transliteration: "Allahumma 'alimal-ghaybi wash-shahadah, fatiras-samawati wal-ard, rabba kulli shay'in wa malikah, ashhadu an la ilaha illa ant, a'oodhu bika min sharri nafsi, wa min sharrish-shaytani wa shirkih, wa an aqtarifa 'ala nafsi soo'an, aw ajurrahu ila muslim.",
				Translation:     "O Allah, Knower of the unseen and the seen, Creator of the heavens and the Earth, Lord and Sovereign of all things, I bear witness that none has the right to be worshipped except You. I take refuge in You from the evil of my soul and from the evil and shirk of the devil, and from committing wrong against my soul or bringing such upon another Muslim.",
				Repeat:          1,
			},
			{
				ID:              "morning-21",
				Arabic:          "أَعـوذُ بِكَلِمـاتِ اللّهِ التّـامّـاتِ مِنْ شَـرِّ ما خَلَـق",
				Transliteration: "A'oodhu bikalimatil-lahit-tammati min sharri ma khalaq.",
				Translation:     "I take refuge in the perfect words of Allah from the evil of what He has created.",
				Repeat:          3,
			},
			{
				ID:              "morning-22",
				Arabic:          "اللَّهُمَّ صَلِّ وَسَلِّمْ وَبَارِكْ على نَبِيِّنَا مُحمَّد",
				Transliteration: "Allahumma salli wa sallim wa barik 'ala nabiyyina Muhammad.",
				Translation:     "O Allah, send prayers, peace and blessings upon our Prophet Muhammad.",
				Virtue:          "من صلى على حين يصبح وحين يمسى ادركته شفاعتى يوم القيامة",
				Repeat:          10,
			},
			{
				ID:              "morning-23",
				Arabic:          "اللَّهُمَّ إِنَّا نَعُوذُ بِكَ مِنْ أَنْ نُشْرِكَ بِكَ شَيْئًا نَعْلَمُهُ ، وَنَسْتَغْفِرُكَ لِمَا لَا نَعْلَمُهُ",
				Transliteration: "Allahumma inna na'oodhu bika min an nushrika bika shay'an na'lamuhu, wa nastaghfiruka lima la na'lamuh.",
				Translation:     "O Allah, we seek refuge in You from knowingly associating partners with You, and we seek Your forgiveness for what we do unknowingly.",
				Repeat:          3,
			},
			{
				ID:              "morning-24",
				Arabic:          "اللَّهُمَّ إِنِّي أَعُوذُ بِكَ مِنْ الْهَمِّ وَالْحَزَنِ، وَأَعُوذُ بِكَ مِنْ الْعَجْزِ وَالْكَسَلِ، وَأَعُوذُ بِكَ مِنْ الْجُبْنِ وَالْبُخْلِ، وَأَعُوذُ بِكَ مِنْ غَلَبَةِ الدَّيْنِ، وَقَهْرِ الرِّجَالِ",
				Transliteration: "Allahumma inni a'oodhu bika minal-hammi wal-hazan, wa a'oodhu bika minal-'ajzi wal-kasal, wa a'oodhu bika minal-jubni wal-bukhl, wa a'oodhu bika min ghalabatid-dayni, wa qahrir-rijal.",
				Translation:     "O Allah, I seek refuge in You from anxiety and sorrow, and I seek refuge in You from weakness and laziness, and I seek refuge in You from cowardice and miserliness, and I seek refuge in You from being overcome by debt and overpowered by men.",
				Repeat:          3,
			},
			{
				ID:              "morning-25",
				Arabic:          "أسْتَغْفِرُ اللهَ العَظِيمَ الَّذِي لاَ إلَهَ إلاَّ هُوَ، الحَيُّ القَيُّومُ، وَأتُوبُ إلَيهِ",
				Transliteration: "Astaghfirullaha al-'Adheema alladhi la ilaha illa huwa, al-Hayyu al-Qayyumu, wa atubu ilayh.",
				Translation:     "I seek the forgiveness of Allah the Mighty, Whom there is none worthy of worship except Him, the Living, the Self-Sustaining, and I repent unto Him.",
				Repeat:          3,
			},
			{
				ID:              "morning-26",
				Arabic:          "يَا رَبِّ , لَكَ الْحَمْدُ كَمَا يَنْبَغِي لِجَلَالِ وَجْهِكَ , وَلِعَظِيمِ سُلْطَانِكَ",
				Transliteration: "Ya Rabb, lakal-hamdu kama yanbaghi li-jalali wajhika, wa li-'atheemi sultanik.",
				Translation:     "O Lord, to You belongs all praise as befits the glory of Your face and the greatness of Your might.",
				Repeat:          3,
			},
			{
				ID:              "morning-27",
				Arabic:          "اللَّهُمَّ إِنِّي أَسْأَلُكَ عِلْمًا نَافِعًا، وَرِزْقًا طَيِّبًا، وَعَمَلًا مُتَقَبَّلًا",
				Transliteration: "Allahumma inni as'aluka 'ilman nafi'an, wa rizqan tayyiban, wa 'amalan mutaqabbalan.",
				Translation:     "O Allah, I ask You for beneficial knowledge, goodly provision and acceptable actions.",
				Repeat:          1,
			},
			{
				ID:              "morning-28",
				Arabic:          "اللَّهُمَّ أَنْتَ رَبِّي لا إِلَهَ إِلا أَنْتَ ، عَلَيْكَ تَوَكَّلْتُ ، وَأَنْتَ رَبُّ الْعَرْشِ الْعَظِيمِ , مَا شَاءَ اللَّهُ كَانَ ، وَمَا لَمْ يَشَأْ لَمْ يَكُنْ ، وَلا حَوْلَ وَلا قُوَّةَ إِلا بِاللَّهِ الْعَلِيِّ الْعَظِيمِ , أَعْلَمُ أَنَّ اللَّهَ عَلَى كُلِّ شَيْءٍ قَدِيرٌ ، وَأَنَّ اللَّهَ قَدْ أَحَاطَ بِكُلِّ شَيْءٍ عِلْمًا , اللَّهُمَّ إِنِّي أَعُوذُ بِكَ مِنْ شَرِّ نَفْسِي ، وَمِنْ شَرِّ كُلِّ دَابَّةٍ أَنْتَ آخِذٌ بِنَاصِيَتِهَا ، إِنَّ رَبِّي عَلَى صِرَاطٍ مُسْتَقِيمٍ",
				Transliteration: "Allahumma anta Rabbi la ilaha illa anta, 'alayka tawakkaltu, wa anta Rabbul-'arshil-'adheem, ma sha'Allahu kana, wa ma lam yasha' lam yakun, wa la hawla wa la quwwata illa billahil-'aliyyil-'adheem. A'lamu annAllaha 'ala kulli shay'in qadeer, wa annAllaha qad ahata bikulli shay ilma. Allahumma inni a'oodhu bika min sharri nafsi, wa min sharri kulli dabbatin anta akhidhun bi-nasiyatiha, inna Rabbi 'ala siratin mustaqeem.",
				Translation:     "O Allah, You are my Lord, there is none worthy of worship but You. I rely upon You and You are the Lord of the mighty throne. Whatever Allah wills happens and whatever He does not will does not happen. There is no power or might except with Allah, the Most High, the Most Great. I know that Allah is capable of all things and that Allah has encompassed all things with His knowledge. O Allah, I seek refuge in You from the evil of myself and from the evil of every creature that You have taken by its forelock. Surely my Lord is on a straight path.",
				Repeat:          1,
			},
			{
				ID:              "morning-29",
				Arabic:          "لَا إلَه إلّا اللهُ وَحْدَهُ لَا شَرِيكَ لَهُ، لَهُ الْمُلْكُ وَلَهُ الْحَمْدُ وَهُوَ عَلَى كُلِّ شَيْءِ قَدِيرِ",
				Transliteration: "La ilaha illallahu wahdahu la shareeka lah, lahul-mulku wa lahul-hamdu, wa huwa 'ala kulli shay quadir",
				Translation:     "None has the right to be worshipped except Allah, alone, without partner. To Him belongs all sovereignty and praise, and He is over all things omnipotent.",
				Virtue:          "كانت له عدل عشر رقاب، وكتبت له مئة حسنة، ومحيت عنه مئة سيئة، وكانت له حرزا من الشيطان",
				Repeat:          100,
			},
			{
				ID:              "morning-30",
				Arabic:          "سُبْحـانَ اللهِ وَبِحَمْـدِهِ",
				Transliteration: "Subhanallahi wa bihamdihi.",
				Translation:     "Glory is to Allah and praise is to Him.",
				Virtue:          "حُطَّتْ خَطَايَاهُ وَإِنْ كَانَتْ مِثْلَ زَبَدِ الْبَحْرِ. لَمْ يَأْتِ أَحَدٌ يَوْمَ الْقِيَامَةِ بِأَفْضَلَ مِمَّا جَاءَ بِهِ إِلَّا أَحَدٌ قَالَ مِثْلَ مَا قَالَ أَوْ زَادَ عَلَيْهِ",
				Repeat:          100,
			},
		},
	},
	{
		ID:                "evening",
		Title:             "Evening Adhkar",
		ArabicTitle:       "أذكار المساء",
		Description:       "Recite these supplications after Asr prayer until Maghrib",
		ArabicDescription: "تقرأ هذه الأذكار بعد صلاة العصر حتى المغرب",
		Adhkar: []model.Dhikr{
			{
				ID:              "evening-1",
				Arabic:          "أَمْسَيْنَا وَأَمْسَى الْمُلْكُ لِلَّهِ، وَالْحَمْدُ لِلَّهِ",
				Transliteration: "Amsayna wa amsal mulku lillah, wal hamdu lillah.",
				Translation:     "We have reached the evening and at this very time unto Allah belongs all sovereignty, and all praise is for Allah.",
				Repeat:          1,
			},
			{
				ID:              "evening-2",
				Arabic:          "اللَّهُمَّ أَنْتَ رَبِّي لَا إِلَهَ إِلَّا أَنْتَ",
				Transliteration: "Allahumma anta rabbi la ilaha illa ant.",
				Translation:     "O Allah, You are my Lord, there is none worthy of worship but You.",
				Virtue:          "من قالها موقناً بها حين يمسي ومات من ليلته دخل الجنة",
				Repeat:          1,
			},
			{
				ID:              "evening-3",
				Arabic:          "اللَّهُمَّ إِنِّي أَمْسَيْتُ أُشْهِدُكَ",
				Transliteration: "Allahumma inni amsaytu ush-hiduka.",
				Translation:     "O Allah, I have reached the evening and call upon You.",
				Repeat:          4,
			},
		},
	},
	{
		ID:                "sleep",
		Title:             "Before Sleep Adhkar",
		ArabicTitle:       "أذكار النوم",
		Description:       "Recite these supplications before going to bed",
		ArabicDescription: "تقرأ هذه الأذكار قبل النوم",
		Adhkar: []model.Dhikr{
			{
				ID:              "sleep-1",
				Arabic:          "بِاسْمِكَ اللَّهُمَّ أَمُوتُ وَأَحْيَا",
				Transliteration: "Bismika Allahumma amootu wa ahya.",
				Translation:     "In Your name, O Allah, I die and I live.",
				Repeat:          1,
			},
			{
				ID:              "sleep-2",
				Arabic:          "اللَّهُمَّ قِنِي عَذَابَكَ يَوْمَ تَبْعَثُ عِبَادَكَ",
				Transliteration: "Allahumma qini adhabaka yawma tab'athu ibadak.",
				Translation:     "O Allah, protect me from Your punishment on the day Your servants are resurrected.",
				Repeat:          3,
			},
			{
				ID:              "sleep-3",
				Arabic:          "سُبْحَانَ اللَّهِ",
				Transliteration: "Subhan Allah",
				Translation:     "Glory be to Allah",
				Repeat:          33,
			},
			{
				ID:              "sleep-4",
				Arabic:          "الْحَمْدُ لِلَّهِ",
				Transliteration: "Alhamdulillah",
				Translation:     "All praise is due to Allah",
				Repeat:          33,
			},
			{
				ID:              "sleep-5",
				Arabic:          "اللَّهُ أَكْبَرُ",
				Transliteration: "Allahu Akbar",
				Translation:     "Allah is the Greatest",
				Repeat:          34,
			},
		},
	},
}
